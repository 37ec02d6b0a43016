package services

import (
	"math"
	"waste-route-service/internal/domain"
)

// BuildTour orders points using a greedy nearest-neighbor heuristic.
//
// Starting from start, it repeatedly moves to the closest point not yet visited.
// The result begins with start followed by every input point exactly once.
// It does not attempt global route optimization.
//
// Ties go to the point that appears first in points, so equal inputs always
// produce equal tours. The input slice is not modified.
func BuildTour(start domain.Point, points []domain.Point) []domain.Point {
	path := make([]domain.Point, 0, len(points)+1)
	path = append(path, start)

	visited := make([]bool, len(points))
	current := start

	for step := 0; step < len(points); step++ {
		best := -1
		minDistance := math.Inf(1)

		// Select next stop by minimum distance (greedy step).
		for i, p := range points {
			if visited[i] {
				continue
			}
			// Strict comparison keeps the earliest index on ties.
			if d := Distance(current, p); best == -1 || d < minDistance {
				minDistance = d
				best = i
			}
		}

		visited[best] = true
		current = points[best]
		path = append(path, current)
	}

	return path
}

// TotalDistance sums the leg distances along path in kilometres.
func TotalDistance(path []domain.Point) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		total += Distance(path[i], path[i+1])
	}
	return total
}
