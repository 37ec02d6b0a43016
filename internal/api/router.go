package api

import (
	"net/http"
	"waste-route-service/internal/api/handlers"
	"waste-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(waste *services.WasteService, classify *services.ClassifyService) http.Handler {
	mux := http.NewServeMux()

	pickupHandler := &handlers.PickupHandler{Svc: waste}
	routeHandler := &handlers.RouteHandler{Svc: waste}
	classifyHandler := &handlers.ClassifyHandler{Svc: classify, Default: waste.Depot}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("GET /households", pickupHandler.ListHouseholds)
	mux.HandleFunc("GET /waste-types", pickupHandler.WasteTypes)
	mux.HandleFunc("GET /pickups", pickupHandler.List)
	mux.HandleFunc("POST /pickups", pickupHandler.Create)
	mux.HandleFunc("POST /pickups/{id}/cancel", pickupHandler.Cancel)
	mux.HandleFunc("POST /pickups/{id}/picked", pickupHandler.MarkPicked)
	mux.HandleFunc("GET /overflows", pickupHandler.ListOverflows)
	mux.HandleFunc("POST /overflows", pickupHandler.ReportOverflow)
	mux.HandleFunc("POST /overflows/{id}/resolve", pickupHandler.ResolveOverflow)
	mux.HandleFunc("GET /points", pickupHandler.Points)
	mux.HandleFunc("GET /rewards", pickupHandler.Wallet)

	mux.HandleFunc("POST /routes", routeHandler.Plan)
	mux.HandleFunc("GET /routes/active", routeHandler.Active)
	mux.HandleFunc("POST /routes/active/execute", routeHandler.Execute)

	mux.HandleFunc("POST /api/ai/classify", classifyHandler.Classify)

	return requestIDMiddleware(loggingMiddleware(mux))
}
