package reconcile

import (
	"sync"

	"github.com/stc-tennis/rankserver/internal/domain"

	"github.com/google/uuid"
)

// Task is one per-player point delta that failed to apply while its match
// record was already persisted. The delta keeps its sign, re-applying it
// against the player's current total completes the original update.
type Task struct {
	MatchID int
	Player  uuid.UUID
	Format  domain.Format
	Delta   int
}

// Journal collects failed per-player updates so a corrective pass can retry
// exactly those, and nothing else.
type Journal struct {
	mu      sync.RWMutex
	pending []Task
}

func New() *Journal {
	return &Journal{}
}

func (j *Journal) Add(tasks ...Task) {
	if len(tasks) == 0 {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()

	j.pending = append(j.pending, tasks...)
}

// Drain removes and returns every pending task in arrival order. Tasks that
// fail again should be re-added by the caller.
func (j *Journal) Drain() []Task {
	j.mu.Lock()
	defer j.mu.Unlock()

	tasks := j.pending
	j.pending = nil
	return tasks
}

func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return len(j.pending)
}
