package domain

// Immutable geographic point (latitude, longitude) identified by ID.
// Two points with equal coordinates are still distinct stops when their IDs differ.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
	ID  string  `json:"id"`
}

// Return the point as [lat, lng] for map-facing clients.
func (p Point) LatLng() [2]float64 { return [2]float64{p.Lat, p.Lng} }
