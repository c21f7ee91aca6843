package tier

import "github.com/stc-tennis/rankserver/internal/domain"

// threshold is the minimum average of the two point columns for a tier.
// Highest satisfied threshold wins, default Bronze.
type threshold struct {
	tier domain.Tier
	min  float64
}

var thresholds = []threshold{
	{tier: domain.TierGold, min: 1550},
	{tier: domain.TierSilver, min: 1450},
}

// FromPoints derives the tier from the average of a player's singles and
// doubles totals. It must be called on every point write so the tier never
// drifts from the points it is computed from.
func FromPoints(singlesPoints, doublesPoints int) domain.Tier {
	avg := float64(singlesPoints+doublesPoints) / 2
	for _, t := range thresholds {
		if avg >= t.min {
			return t.tier
		}
	}
	return domain.TierBronze
}
