package service

import (
	"math"

	"github.com/Hossam-elsheikh/lap-bonus/internal/model"
)

// PointsForCost converts a monetary cost into loyalty points at the tier's
// personal conversion rate. A missing or non-positive rate earns nothing;
// that is a defined degenerate case, not an error.
func PointsForCost(cost, pcr float64) float64 {
	if pcr <= 0 || math.IsNaN(pcr) || math.IsInf(pcr, 0) {
		return 0
	}
	return cost / pcr
}

// NextTier returns the tier a member should advance to given their new
// points total, or nil when no change is due. The rule is monotonic: promote
// to the highest tier whose MinPoints threshold is at or below the total,
// and never demote. tiers is the full tier table, any order.
func NextTier(tiers []model.Tier, currentID *uint64, total float64) *model.Tier {
	var current *model.Tier
	if currentID != nil {
		for i := range tiers {
			if tiers[i].ID == *currentID {
				current = &tiers[i]
				break
			}
		}
	}

	var best *model.Tier
	for i := range tiers {
		t := &tiers[i]
		if t.MinPoints > total {
			continue
		}
		if best == nil || t.MinPoints > best.MinPoints {
			best = t
		}
	}
	if best == nil {
		return nil
	}
	if current != nil && (best.ID == current.ID || best.MinPoints <= current.MinPoints) {
		return nil
	}
	return best
}
