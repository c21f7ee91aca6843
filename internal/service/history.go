package service

import (
	"github.com/stc-tennis/rankserver/internal/domain"

	"github.com/google/uuid"
)

// GetHistory reconstructs the player's point balance after every match of
// the given format. Nothing is snapshotted: the starting balance is derived
// backwards from the player's current stored total, then the ledger is
// replayed forward. The balance after the most recent match therefore
// always equals the stored total. The walk is redone in full on every call
// because deleting a match retroactively changes every later balance.
// Entries are returned newest first.
func (s *RatingService) GetHistory(playerID uuid.UUID, format domain.Format) ([]domain.HistoryEntry, error) {
	player, err := s.playerStorage.Get(playerID)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchStorage.ListByPlayer(playerID)
	if err != nil {
		return nil, err
	}
	names, err := s.playerNames()
	if err != nil {
		return nil, err
	}

	filtered := matches[:0]
	for _, m := range matches {
		if m.Format == format {
			filtered = append(filtered, m)
		}
	}

	totalDelta := 0
	for _, m := range filtered {
		totalDelta += matchDelta(m, playerID)
	}
	balance := player.Points(format) - totalDelta

	entries := make([]domain.HistoryEntry, 0, len(filtered))
	for _, m := range filtered {
		delta := matchDelta(m, playerID)
		balance += delta
		teammates, opponents := sidesFor(m, playerID, names)
		entries = append(entries, domain.HistoryEntry{
			MatchID:        m.ID,
			Date:           m.CreatedAt,
			Format:         m.Format,
			IsWinner:       m.IsWinner(playerID),
			Delta:          delta,
			RunningBalance: balance,
			Teammates:      teammates,
			Opponents:      opponents,
		})
	}
	reverse(entries)
	return entries, nil
}

func matchDelta(m domain.Match, playerID uuid.UUID) int {
	if m.IsWinner(playerID) {
		return m.Magnitude
	}
	return -m.Magnitude
}

// sidesFor splits a match into the player's teammates (doubles partner,
// excluding the player) and the opposing side, as display names.
func sidesFor(m domain.Match, playerID uuid.UUID, names map[uuid.UUID]string) (teammates, opponents []string) {
	own, other := m.Winners, m.Losers
	if !m.IsWinner(playerID) {
		own, other = m.Losers, m.Winners
	}
	for _, id := range own {
		if id == playerID {
			continue
		}
		teammates = append(teammates, resolveNames(names, []uuid.UUID{id})...)
	}
	opponents = resolveNames(names, other)
	return teammates, opponents
}

func reverse(entries []domain.HistoryEntry) {
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
}
