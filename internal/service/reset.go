package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/stc-tennis/rankserver/internal/domain"
	"github.com/stc-tennis/rankserver/internal/tier"
)

// ResetSeason regresses every player's points toward the baseline:
// new = baseline + (old-baseline) * decay, rounded to the nearest integer.
// The match ledger is kept, history reconstruction stays consistent because
// it back-derives its starting balance from the current totals. Players are
// updated independently, a failure on one does not stop the rest.
func (s *RatingService) ResetSeason() error {
	players, err := s.playerStorage.ListPlayers()
	if err != nil {
		return err
	}
	var errs error
	for _, p := range players {
		if err := s.resetPlayer(p); err != nil {
			s.log.WithError(err).WithField("player", p.ID).Error("season reset did not apply")
			errs = errors.Join(errs, fmt.Errorf("player %s: %w", p.ID, err))
		}
	}
	s.log.WithField("players", len(players)).Info("season reset applied")
	return errs
}

func (s *RatingService) resetPlayer(p domain.Player) error {
	unlock := s.locks.lock(p.ID)
	defer unlock()

	current, err := s.playerStorage.Get(p.ID)
	if err != nil {
		return err
	}
	singles := s.decay(current.SinglesPoints)
	doubles := s.decay(current.DoublesPoints)
	newTier := tier.FromPoints(singles, doubles)
	if err := s.playerStorage.UpdatePoints(p.ID, domain.FormatSingles, singles, newTier); err != nil {
		return err
	}
	return s.playerStorage.UpdatePoints(p.ID, domain.FormatDoubles, doubles, newTier)
}

func (s *RatingService) decay(old int) int {
	baseline := float64(s.cfg.Baseline)
	next := baseline + (float64(old)-baseline)*s.cfg.DecayFactor
	clamped := int(math.Round(next))
	if clamped < 0 {
		clamped = 0
	}
	return clamped
}
