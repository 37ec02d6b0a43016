package dto

import (
	"time"
	"waste-route-service/internal/domain"
)

type StartPoint struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
	ID  string   `json:"id" validate:"max=64"`
}

type PlanRequest struct {
	Start *StartPoint `json:"start"`
}

type PlanResponse struct {
	Path             []domain.Point `json:"path"`
	Route            [][2]float64   `json:"route"`
	TotalDistanceKm  float64        `json:"total_distance_km"`
	EstimatedMinutes float64        `json:"estimated_minutes"`
	RouteValue       int            `json:"route_value"`
	EstimatedTonnes  float64        `json:"estimated_tonnes"`
	GeneratedAt      time.Time      `json:"generated_at"`
}

type ExecuteRouteResponse struct {
	Picked        []string `json:"picked"`
	CitizenPoints int      `json:"citizen_points"`
}

func NewPlanResponse(p *domain.RoutePlan) PlanResponse {
	route := make([][2]float64, 0, len(p.Path))
	for _, pt := range p.Path {
		route = append(route, pt.LatLng())
	}

	return PlanResponse{
		Path:             p.Path,
		Route:            route,
		TotalDistanceKm:  p.TotalDistanceKm,
		EstimatedMinutes: p.EstimatedMinutes,
		RouteValue:       p.RouteValue,
		EstimatedTonnes:  p.EstimatedTonnes,
		GeneratedAt:      p.GeneratedAt,
	}
}
