package domain

import (
	"time"

	"github.com/google/uuid"
)

// Format selects which point column a match moves.
type Format string

const (
	FormatSingles Format = "Singles"
	FormatDoubles Format = "Doubles"
)

// SideSize returns how many players each side of a match must have.
func (f Format) SideSize() int {
	if f == FormatDoubles {
		return 2
	}
	return 1
}

func (f Format) Valid() bool {
	return f == FormatSingles || f == FormatDoubles
}

// Match is one completed, immutable ledger entry. Magnitude is computed
// once at creation and never recomputed on later reads.
type Match struct {
	ID        int
	Format    Format
	Winners   []uuid.UUID
	Losers    []uuid.UUID
	Score     string
	Magnitude int
	CreatedAt time.Time
}

// Participants returns every player on either side, winners first.
func (m Match) Participants() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(m.Winners)+len(m.Losers))
	out = append(out, m.Winners...)
	out = append(out, m.Losers...)
	return out
}

// HasPlayer reports whether the player took part on either side.
func (m Match) HasPlayer(id uuid.UUID) bool {
	for _, p := range m.Participants() {
		if p == id {
			return true
		}
	}
	return false
}

// IsWinner reports whether the player was on the winning side.
func (m Match) IsWinner(id uuid.UUID) bool {
	for _, p := range m.Winners {
		if p == id {
			return true
		}
	}
	return false
}

// MatchInfo is a ledger entry with participant names resolved for display.
type MatchInfo struct {
	Match
	WinnerNames []string
	LoserNames  []string
}

// HistoryEntry is one step of a player's reconstructed point history.
type HistoryEntry struct {
	MatchID        int
	Date           time.Time
	Format         Format
	IsWinner       bool
	Delta          int
	RunningBalance int
	Teammates      []string
	Opponents      []string
}
