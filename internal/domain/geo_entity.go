package domain

import "slices"

type GeoEntityType string

const (
	EntityCollector      GeoEntityType = "COLLECTOR"
	EntityBin            GeoEntityType = "BIN"
	EntityDisposalCenter GeoEntityType = "DISPOSAL_CENTER"
)

// A place that accepts sorted waste: a collector, a public bin or a disposal centre.
type GeoEntity struct {
	ID          string        `json:"id"`
	Type        GeoEntityType `json:"type"`
	DisplayName string        `json:"display_name"`
	Accepts     []string      `json:"accepts"`
	Lat         float64       `json:"lat"`
	Lng         float64       `json:"lng"`
	Status      string        `json:"status,omitempty"`
}

func (e GeoEntity) AcceptsMaterial(materialID string) bool {
	return slices.Contains(e.Accepts, materialID)
}

func (e GeoEntity) Point() Point {
	return Point{Lat: e.Lat, Lng: e.Lng, ID: e.ID}
}

// DefaultGeoEntities is the built-in catalogue for the Guwahati demo area.
var DefaultGeoEntities = []GeoEntity{
	{
		ID:          "collector_01",
		Type:        EntityCollector,
		DisplayName: "Local Waste Collector (Ward 12)",
		Accepts:     []string{"plastic", "metal", "paper"},
		Lat:         26.1451,
		Lng:         91.7368,
		Status:      "AVAILABLE",
	},
	{
		ID:          "collector_02",
		Type:        EntityCollector,
		DisplayName: "Kabadiwala – Ganeshguri",
		Accepts:     []string{"paper", "metal"},
		Lat:         26.1483,
		Lng:         91.7399,
		Status:      "AVAILABLE",
	},
	{
		ID:          "bin_01",
		Type:        EntityBin,
		DisplayName: "Community Recycling Bin",
		Accepts:     []string{"plastic", "paper"},
		Lat:         26.1439,
		Lng:         91.7341,
	},
	{
		ID:          "disposal_ewaste_01",
		Type:        EntityDisposalCenter,
		DisplayName: "Authorized E-Waste Center",
		Accepts:     []string{"e_waste", "glass"},
		Lat:         26.1472,
		Lng:         91.7395,
	},
}
