package services

import (
	"context"
	"fmt"
	"waste-route-service/internal/domain"
)

type RewardOption struct {
	domain.Reward
	Redeemable bool `json:"redeemable"`
}

// Wallet is a citizen's points balance and what it can be spent on.
type Wallet struct {
	CitizenPoints    int            `json:"citizen_points"`
	CompletedPickups int            `json:"completed_pickups"`
	Rewards          []RewardOption `json:"rewards"`
}

// Wallet reads the points balance and checks every reward in the catalogue
// against it. Balance and pickup count come from the same state snapshot.
func (s *WasteService) Wallet(ctx context.Context) (*Wallet, error) {
	state, err := s.read(ctx)
	if err != nil {
		return nil, fmt.Errorf("wallet: %w", err)
	}

	rewards := s.Rewards
	if rewards == nil {
		rewards = domain.DefaultRewards
	}

	w := &Wallet{
		CitizenPoints:    state.CitizenPoints,
		CompletedPickups: state.CompletedPickups(),
		Rewards:          make([]RewardOption, 0, len(rewards)),
	}
	for _, r := range rewards {
		w.Rewards = append(w.Rewards, RewardOption{Reward: r, Redeemable: r.Redeemable(state.CitizenPoints)})
	}

	return w, nil
}
