package domain

import (
	"fmt"
	"math"
)

// TierThreshold is the points denominator for the single loyalty tier.
const TierThreshold = 500

// Achievement is a derived fact computed from loyalty metrics. There is no
// stored unlocked flag: every evaluation recomputes from the user's counters,
// so an achievement can lock again if its condition stops holding.
type Achievement struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Unlocked bool   `json:"unlocked"`
}

// Achievements evaluates the three fixed achievement rules for a user.
func Achievements(u User) []Achievement {
	return []Achievement{
		{ID: "explorer", Title: "Explorer", Desc: "Visited 10+ stores", Unlocked: u.VisitedStores >= 10},
		{ID: "early", Title: "Early Saver", Desc: "Saved ≤ £50", Unlocked: u.Saved > 0 && u.Saved <= 50},
		{ID: "first", Title: "First Timer", Desc: "Completed first order", Unlocked: u.Meals >= 1},
	}
}

// LoyaltyProgress is the progress-bar percentage toward the tier threshold,
// capped at 100.
func LoyaltyProgress(u User) int {
	pct := int(math.Round(float64(u.Points) / TierThreshold * 100))
	if pct > 100 {
		return 100
	}
	return pct
}

// TierLabel renders the points-over-threshold label, e.g. "450 / 500".
func TierLabel(u User) string {
	return fmt.Sprintf("%d / %d", u.Points, TierThreshold)
}
