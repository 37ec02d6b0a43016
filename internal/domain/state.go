package domain

import (
	"fmt"
	"strings"
	"time"
)

// Points credited to the citizen for every completed pickup.
const PointsPerPickup = 10

// WasteState is the whole mutable application state.
// Transitions below are pure: they never modify their input and return a new state.
// Persistence is the caller's concern.
type WasteState struct {
	Pickups       []Pickup      `json:"pickups"`
	Overflows     []BinOverflow `json:"overflows"`
	CitizenPoints int           `json:"citizen_points"`
	ActiveRoute   *RoutePlan    `json:"active_route,omitempty"`
}

// Input for a new pickup request. Empty fields fall back to household defaults.
type PickupRequest struct {
	HouseholdID string
	Type        WasteType
	Address     string
	FullName    string
	Phone       string
	Slot        string
}

func (s WasteState) clone() WasteState {
	out := s
	out.Pickups = append([]Pickup(nil), s.Pickups...)
	out.Overflows = append([]BinOverflow(nil), s.Overflows...)
	return out
}

// PendingPickups returns the pending pickups in state order (newest first).
func (s WasteState) PendingPickups() []Pickup {
	out := make([]Pickup, 0, len(s.Pickups))
	for _, p := range s.Pickups {
		if p.Status == PickupPending {
			out = append(out, p)
		}
	}
	return out
}

// CompletedPickups counts the pickups already collected.
func (s WasteState) CompletedPickups() int {
	n := 0
	for _, p := range s.Pickups {
		if p.Status == PickupPicked {
			n++
		}
	}
	return n
}

func (s WasteState) indexOfPickup(id string) int {
	for i, p := range s.Pickups {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// AddPickup creates a pending pickup for a known household and prepends it.
func AddPickup(
	s WasteState,
	households []Household,
	req PickupRequest,
	id string,
	now time.Time,
) (WasteState, Pickup, error) {
	var household *Household
	for i := range households {
		if households[i].ID == req.HouseholdID {
			household = &households[i]
			break
		}
	}
	if household == nil {
		return s, Pickup{}, fmt.Errorf("add pickup: household %q: %w", req.HouseholdID, ErrHouseholdNotFound)
	}

	wasteType := req.Type
	if wasteType == "" {
		wasteType = WasteWet
	}
	if !wasteType.Valid() {
		return s, Pickup{}, fmt.Errorf("add pickup: type %q: %w", wasteType, ErrInvalidWasteType)
	}

	address := strings.TrimSpace(req.Address)
	if address == "" {
		address = household.Address
	}

	p := Pickup{
		ID:          id,
		HouseholdID: household.ID,
		Lat:         household.Lat,
		Lng:         household.Lng,
		Type:        wasteType,
		Status:      PickupPending,
		Timestamp:   now,
		Address:     address,
		BidValue:    wasteType.Rate(),
		FullName:    req.FullName,
		Phone:       req.Phone,
		Slot:        req.Slot,
	}

	out := s.clone()
	out.Pickups = append([]Pickup{p}, out.Pickups...)
	return out, p, nil
}

// CancelPickup removes a pickup regardless of its status.
func CancelPickup(s WasteState, id string) (WasteState, error) {
	i := s.indexOfPickup(id)
	if i < 0 {
		return s, fmt.Errorf("cancel pickup %q: %w", id, ErrPickupNotFound)
	}

	out := s.clone()
	out.Pickups = append(out.Pickups[:i], out.Pickups[i+1:]...)
	return out, nil
}

// MarkPicked completes a pickup and credits the citizen.
// Marking an already picked pickup is a no-op.
func MarkPicked(s WasteState, id string) (WasteState, error) {
	i := s.indexOfPickup(id)
	if i < 0 {
		return s, fmt.Errorf("mark picked %q: %w", id, ErrPickupNotFound)
	}
	if s.Pickups[i].Status == PickupPicked {
		return s, nil
	}

	out := s.clone()
	out.Pickups[i].Status = PickupPicked
	out.CitizenPoints += PointsPerPickup
	return out, nil
}

// ReportBinOverflow records a pending overflow report and prepends it.
func ReportBinOverflow(s WasteState, location, description, id string, now time.Time) (WasteState, BinOverflow, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return s, BinOverflow{}, fmt.Errorf("report bin overflow: %w", ErrLocationRequired)
	}

	o := BinOverflow{
		ID:          id,
		Location:    location,
		Description: strings.TrimSpace(description),
		Timestamp:   now,
		Status:      OverflowPending,
	}

	out := s.clone()
	out.Overflows = append([]BinOverflow{o}, out.Overflows...)
	return out, o, nil
}

// ResolveOverflow marks a bin overflow report as handled.
func ResolveOverflow(s WasteState, id string) (WasteState, BinOverflow, error) {
	for i, o := range s.Overflows {
		if o.ID != id {
			continue
		}
		if o.Status == OverflowResolved {
			return s, o, nil
		}

		out := s.clone()
		out.Overflows[i].Status = OverflowResolved
		return out, out.Overflows[i], nil
	}

	return s, BinOverflow{}, fmt.Errorf("resolve overflow %q: %w", id, ErrOverflowNotFound)
}

// SetActiveRoute replaces the collector's active route; nil clears it.
func SetActiveRoute(s WasteState, plan *RoutePlan) WasteState {
	out := s.clone()
	out.ActiveRoute = plan
	return out
}
