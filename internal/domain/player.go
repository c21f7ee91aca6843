package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tier is derived from a player's point totals and is never set directly.
type Tier string

const (
	TierGold   Tier = "Gold"
	TierSilver Tier = "Silver"
	TierBronze Tier = "Bronze"
)

type Player struct {
	ID            uuid.UUID
	Name          string
	StudentID     string
	SinglesPoints int
	DoublesPoints int
	Tier          Tier
	RegisteredAt  time.Time
}

// Points returns the player's running total for the given format.
func (p Player) Points(format Format) int {
	if format == FormatDoubles {
		return p.DoublesPoints
	}
	return p.SinglesPoints
}

// RankedPlayer is a player annotated with a competition rank for one format.
type RankedPlayer struct {
	Player
	FormatPoints int
	Rank         int
}
