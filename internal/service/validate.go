package service

import (
	"errors"
	"fmt"

	"github.com/stc-tennis/rankserver/internal/domain"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
)

func (m NewMatch) participants() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(m.Winners)+len(m.Losers))
	out = append(out, m.Winners...)
	out = append(out, m.Losers...)
	return out
}

// Validate checks structural requirements only. Score content is not
// checked here: an unparsable score is handled by the calculator fallback,
// not rejected.
func (m NewMatch) Validate() error {
	var errs error
	if !m.Format.Valid() {
		errs = errors.Join(errs, fmt.Errorf("unknown format %q", m.Format))
	}
	if m.Score == "" {
		errs = errors.Join(errs, errors.New("score must not be empty"))
	}
	if m.Format.Valid() {
		want := m.Format.SideSize()
		if len(m.Winners) != want {
			errs = errors.Join(errs, fmt.Errorf("%s match needs %d winner(s), got %d", m.Format, want, len(m.Winners)))
		}
		if len(m.Losers) != want {
			errs = errors.Join(errs, fmt.Errorf("%s match needs %d loser(s), got %d", m.Format, want, len(m.Losers)))
		}
	}
	seen := mapset.NewSet[uuid.UUID]()
	for _, id := range m.participants() {
		if id == uuid.Nil {
			errs = errors.Join(errs, errors.New("participant id must not be empty"))
			continue
		}
		if !seen.Add(id) {
			errs = errors.Join(errs, fmt.Errorf("player %s appears more than once", id))
		}
	}
	if errs != nil {
		return errors.Join(domain.ErrValidation, errs)
	}
	return nil
}
