package domain

// A benefit citizens can claim with the points earned from completed pickups.
type Reward struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Partner  string `json:"partner"`
	Points   int    `json:"points"`
	Category string `json:"category"`
}

// Redeemable reports whether a balance of points covers the reward.
func (r Reward) Redeemable(points int) bool {
	return points >= r.Points
}

// DefaultRewards is the partner benefit catalogue.
var DefaultRewards = []Reward{
	{ID: 1, Title: "10% Grocery Discount", Partner: "Reliance Fresh / Big Bazaar", Points: 20, Category: "GROCERIES"},
	{ID: 2, Title: "Free Compost Bag", Partner: "GMC Organic Initiative", Points: 50, Category: "ECO-FRIENDLY"},
	{ID: 3, Title: "Municipal Tax Rebate", Partner: "Guwahati Municipal Corp", Points: 100, Category: "TAX BENEFIT"},
}
