package services

import (
	"context"
	"fmt"
	"waste-route-service/internal/domain"
	"waste-route-service/internal/platform/obs"
)

// NewRoutePlan builds a collection route over pickups from start.
// It is a pure function: the plan depends only on its arguments.
func NewRoutePlan(start domain.Point, pickups []domain.Pickup, minutesPerKm float64) domain.RoutePlan {
	points := make([]domain.Point, 0, len(pickups))
	value := 0
	for _, p := range pickups {
		points = append(points, p.Point())
		value += p.Type.Rate()
	}

	path := BuildTour(start, points)
	km := TotalDistance(path)

	return domain.RoutePlan{
		Path:             path,
		TotalDistanceKm:  km,
		EstimatedMinutes: km * minutesPerKm,
		RouteValue:       value,
		EstimatedTonnes:  float64(len(pickups)) * domain.TonnesPerPickup,
	}
}

// PlanCollectionRoute routes all pending pickups from start and stores the
// result as the active route. A nil start plans from the configured depot.
func (s *WasteService) PlanCollectionRoute(ctx context.Context, start *domain.Point) (_ *domain.RoutePlan, err error) {
	defer obs.Time(ctx, "route.Plan")(&err)

	origin := s.Depot
	if start != nil {
		origin = *start
		if origin.ID == "" {
			origin.ID = s.Depot.ID
		}
	}

	var plan domain.RoutePlan
	err = s.update(ctx, func(state domain.WasteState) (domain.WasteState, error) {
		pending := state.PendingPickups()
		if len(pending) == 0 {
			return state, fmt.Errorf("plan route: %w", domain.ErrNoPendingPickups)
		}

		plan = NewRoutePlan(origin, pending, s.MinutesPerKm)
		plan.GeneratedAt = s.Now()

		return domain.SetActiveRoute(state, &plan), nil
	})
	if err != nil {
		return nil, err
	}

	return &plan, nil
}

func (s *WasteService) ActiveRoute(ctx context.Context) (*domain.RoutePlan, error) {
	state, err := s.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("active route: %w", err)
	}
	if state.ActiveRoute == nil {
		return nil, domain.ErrNoActiveRoute
	}
	return state.ActiveRoute, nil
}

// RouteExecution reports the outcome of running the active route.
type RouteExecution struct {
	// IDs of the pickups completed, in visiting order.
	Picked        []string
	CitizenPoints int
}

// ExecuteActiveRoute walks the active route in order, completing every
// pending pickup it visits, then clears the route.
func (s *WasteService) ExecuteActiveRoute(ctx context.Context) (_ *RouteExecution, err error) {
	defer obs.Time(ctx, "route.Execute")(&err)

	res := &RouteExecution{Picked: []string{}}
	err = s.update(ctx, func(state domain.WasteState) (domain.WasteState, error) {
		if state.ActiveRoute == nil {
			return state, fmt.Errorf("execute route: %w", domain.ErrNoActiveRoute)
		}

		pending := make(map[string]struct{})
		for _, p := range state.PendingPickups() {
			pending[p.ID] = struct{}{}
		}

		for _, stop := range state.ActiveRoute.Stops() {
			if err := ctx.Err(); err != nil {
				return state, err
			}
			if _, ok := pending[stop.ID]; !ok {
				continue
			}

			next, err := domain.MarkPicked(state, stop.ID)
			if err != nil {
				return state, fmt.Errorf("execute route: %w", err)
			}
			state = next
			res.Picked = append(res.Picked, stop.ID)
			delete(pending, stop.ID)
		}

		res.CitizenPoints = state.CitizenPoints
		return domain.SetActiveRoute(state, nil), nil
	})
	if err != nil {
		return nil, err
	}

	return res, nil
}
