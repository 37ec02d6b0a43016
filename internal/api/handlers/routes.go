package handlers

import (
	"net/http"
	"waste-route-service/internal/api/dto"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/services"
)

// RouteHandler exposes collector-facing route generation and execution.
type RouteHandler struct {
	Svc *services.WasteService
}

// Plan routes every pending pickup from the requested start, or from the
// configured depot when the body is empty.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PlanRequest
	if !decodeJSON(w, r, &req, true) {
		return
	}

	var start *domain.Point
	if req.Start != nil {
		start = &domain.Point{Lat: *req.Start.Lat, Lng: *req.Start.Lng, ID: req.Start.ID}
	}

	plan, err := h.Svc.PlanCollectionRoute(r.Context(), start)
	if err != nil {
		writeServiceError(w, r, "plan route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}

func (h *RouteHandler) Active(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Svc.ActiveRoute(r.Context())
	if err != nil {
		writeServiceError(w, r, "active route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}

func (h *RouteHandler) Execute(w http.ResponseWriter, r *http.Request) {
	res, err := h.Svc.ExecuteActiveRoute(r.Context())
	if err != nil {
		writeServiceError(w, r, "execute route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ExecuteRouteResponse{Picked: res.Picked, CitizenPoints: res.CitizenPoints})
}
