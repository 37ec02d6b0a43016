package domain

import "time"

type PickupStatus string

const (
	PickupPending PickupStatus = "pending"
	PickupPicked  PickupStatus = "picked"
)

// Represents a citizen's request to collect waste from a household.
// Coordinates are copied from the household at creation so the pickup
// stays routable even if the household catalogue changes later.
type Pickup struct {
	ID          string       `json:"id"`
	HouseholdID string       `json:"household_id"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	Type        WasteType    `json:"type"`
	Status      PickupStatus `json:"status"`
	Timestamp   time.Time    `json:"timestamp"`
	Address     string       `json:"address"`
	BidValue    int          `json:"bid_value"`
	FullName    string       `json:"full_name,omitempty"`
	Phone       string       `json:"phone,omitempty"`
	Slot        string       `json:"slot,omitempty"`
}

// Point returns the routable location of the pickup.
func (p Pickup) Point() Point {
	return Point{Lat: p.Lat, Lng: p.Lng, ID: p.ID}
}

type OverflowStatus string

const (
	OverflowPending  OverflowStatus = "pending"
	OverflowResolved OverflowStatus = "resolved"
)

// A citizen report of a public bin that needs emptying.
type BinOverflow struct {
	ID          string         `json:"id"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
	Status      OverflowStatus `json:"status"`
}

// A registered household that can request pickups.
type Household struct {
	ID               string    `json:"id"`
	Lat              float64   `json:"lat"`
	Lng              float64   `json:"lng"`
	DefaultWasteType WasteType `json:"defaultWasteType"`
	Address          string    `json:"address"`
	Area             string    `json:"area"`
}
