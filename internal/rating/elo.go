package rating

import (
	"math"

	"github.com/dilmax12/HeroForgeNew-sub004/internal/constants"
)

// UpdateElo returns the next rating for one participant of a decisive duel,
// from that participant's perspective. The opponent's own update, if any,
// is a separate call with swapped arguments. The result never goes below
// zero.
func UpdateElo(current, opponent int, won bool) int {
	expected := 1.0 / (1.0 + math.Pow(10, float64(opponent-current)/400.0))
	score := 0.0
	if won {
		score = 1.0
	}
	next := int(math.Round(float64(current) + constants.EloKFactor*(score-expected)))
	if next < 0 {
		next = 0
	}
	return next
}

// Tier classifies a rating into a display tier. Lower bounds are inclusive.
func Tier(rating int) string {
	switch {
	case rating >= 1800:
		return "Legendary"
	case rating >= 1600:
		return "Diamond"
	case rating >= 1400:
		return "Platinum"
	case rating >= 1200:
		return "Gold"
	case rating >= 1000:
		return "Silver"
	default:
		return "Bronze"
	}
}
