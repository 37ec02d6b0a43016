package handlers

import (
	"net/http"
	"waste-route-service/internal/api/dto"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/services"
)

// PickupHandler exposes citizen-facing pickup, overflow and points endpoints.
type PickupHandler struct {
	Svc *services.WasteService
}

func (h *PickupHandler) ListHouseholds(w http.ResponseWriter, r *http.Request) {
	households, err := h.Svc.ListHouseholds(r.Context())
	if err != nil {
		writeServiceError(w, r, "list households", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListHouseholdsResponse{Households: households})
}

func (h *PickupHandler) List(w http.ResponseWriter, r *http.Request) {
	pickups, err := h.Svc.ListPickups(r.Context())
	if err != nil {
		writeServiceError(w, r, "list pickups", err)
		return
	}

	res := dto.ListPickupsResponse{Pickups: make([]domain.Pickup, 0, len(pickups))}
	status := domain.PickupStatus(r.URL.Query().Get("status"))
	for _, p := range pickups {
		if status == "" || p.Status == status {
			res.Pickups = append(res.Pickups, p)
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PickupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePickupRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	p, err := h.Svc.AddPickup(r.Context(), domain.PickupRequest{
		HouseholdID: req.HouseholdID,
		Type:        domain.WasteType(req.Type),
		Address:     req.Address,
		FullName:    req.FullName,
		Phone:       req.Phone,
		Slot:        req.Slot,
	})
	if err != nil {
		writeServiceError(w, r, "add pickup", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, p)
}

func (h *PickupHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.CancelPickup(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, "cancel pickup", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *PickupHandler) MarkPicked(w http.ResponseWriter, r *http.Request) {
	points, err := h.Svc.MarkPicked(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "mark picked", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PointsResponse{CitizenPoints: points})
}

func (h *PickupHandler) ListOverflows(w http.ResponseWriter, r *http.Request) {
	overflows, err := h.Svc.ListOverflows(r.Context())
	if err != nil {
		writeServiceError(w, r, "list overflows", err)
		return
	}
	if overflows == nil {
		overflows = []domain.BinOverflow{}
	}

	writeJSON(w, r, http.StatusOK, dto.ListOverflowsResponse{Overflows: overflows})
}

func (h *PickupHandler) ReportOverflow(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportOverflowRequest
	if !decodeJSON(w, r, &req, false) {
		return
	}

	o, err := h.Svc.ReportBinOverflow(r.Context(), req.Location, req.Description)
	if err != nil {
		writeServiceError(w, r, "report overflow", err)
		return
	}

	writeJSON(w, r, http.StatusCreated, o)
}

func (h *PickupHandler) ResolveOverflow(w http.ResponseWriter, r *http.Request) {
	o, err := h.Svc.ResolveOverflow(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, "resolve overflow", err)
		return
	}

	writeJSON(w, r, http.StatusOK, o)
}

func (h *PickupHandler) Points(w http.ResponseWriter, r *http.Request) {
	points, err := h.Svc.CitizenPoints(r.Context())
	if err != nil {
		writeServiceError(w, r, "citizen points", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.PointsResponse{CitizenPoints: points})
}

// Wallet lists the reward catalogue against the current points balance.
func (h *PickupHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.Svc.Wallet(r.Context())
	if err != nil {
		writeServiceError(w, r, "wallet", err)
		return
	}

	writeJSON(w, r, http.StatusOK, wallet)
}

func (h *PickupHandler) WasteTypes(w http.ResponseWriter, r *http.Request) {
	res := dto.ListWasteTypesResponse{WasteTypes: make([]dto.WasteTypeResponse, 0, len(domain.WasteTypes))}
	for _, t := range domain.WasteTypes {
		res.WasteTypes = append(res.WasteTypes, dto.WasteTypeResponse{
			Type:        t,
			Rate:        t.Rate(),
			Description: t.Description(),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
