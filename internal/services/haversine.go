package services

import (
	"waste-route-service/internal/domain"

	"github.com/umahmood/haversine"
)

// Distance returns the great-circle distance between two points in kilometres.
// Coordinates are not range checked; any real input gives a defined result.
func Distance(a, b domain.Point) float64 {
	return HaversineKm(a.Lat, a.Lng, b.Lat, b.Lng)
}

// HaversineKm returns the great-circle distance in kilometres between two
// points given in decimal degrees, on a sphere of radius 6371 km.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: lat1, Lon: lng1},
		haversine.Coord{Lat: lat2, Lon: lng2},
	)
	return km
}
