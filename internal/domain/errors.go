package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrMatchNotFound  = errors.New("match not found")

	// ErrValidation wraps every malformed-input rejection. Nothing is
	// written when it is returned.
	ErrValidation = errors.New("validation failed")
)

// PartialUpdateError reports a match whose record persisted but whose
// per-player point updates did not all apply. The ledger stays the source
// of truth, so the remaining updates can be completed by a reconcile pass.
type PartialUpdateError struct {
	MatchID int
	Failed  []uuid.UUID
}

func (e *PartialUpdateError) Error() string {
	return fmt.Sprintf("match %d: rating update failed for %d player(s)", e.MatchID, len(e.Failed))
}
