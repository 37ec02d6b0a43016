package domain

import "time"

// Tonnes assumed per pending pickup when estimating a route's load.
const TonnesPerPickup = 0.05

// Represents a generated collection route for a collector.
// Path[0] is always the depot the route was planned from; the remaining
// elements are the pending pickups in visiting order.
// It is immutable planning data and contains no side effects.
type RoutePlan struct {
	Path             []Point   `json:"path"`
	TotalDistanceKm  float64   `json:"total_distance_km"`
	EstimatedMinutes float64   `json:"estimated_minutes"`
	RouteValue       int       `json:"route_value"`
	EstimatedTonnes  float64   `json:"estimated_tonnes"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// Stops returns the visited points, excluding the depot.
func (r *RoutePlan) Stops() []Point {
	if r == nil || len(r.Path) <= 1 {
		return nil
	}
	return r.Path[1:]
}
