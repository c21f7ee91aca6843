package reconcile

import (
	"sync"
	"testing"

	"github.com/stc-tennis/rankserver/internal/domain"

	"github.com/google/uuid"
)

func TestJournal(t *testing.T) {
	j := New()
	if j.Len() != 0 {
		t.Fatalf("new journal Len() = %d, want 0", j.Len())
	}
	a := Task{MatchID: 1, Player: uuid.New(), Format: domain.FormatSingles, Delta: 30}
	b := Task{MatchID: 1, Player: uuid.New(), Format: domain.FormatSingles, Delta: -30}
	j.Add(a)
	j.Add(b)
	if j.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", j.Len())
	}
	got := j.Drain()
	if len(got) != 2 || got[0] != a || got[1] != b {
		t.Errorf("Drain() = %v, want [%v %v] in order", got, a, b)
	}
	if j.Len() != 0 {
		t.Errorf("Len() after drain = %d, want 0", j.Len())
	}
	if drained := j.Drain(); len(drained) != 0 {
		t.Errorf("second Drain() = %v, want empty", drained)
	}
}

func TestJournalConcurrentAdd(t *testing.T) {
	j := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.Add(Task{MatchID: 7, Player: uuid.New(), Format: domain.FormatDoubles, Delta: 10})
		}()
	}
	wg.Wait()
	if j.Len() != 50 {
		t.Errorf("Len() = %d, want 50", j.Len())
	}
}
