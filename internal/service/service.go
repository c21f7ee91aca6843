package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/stc-tennis/rankserver/internal/config"
	"github.com/stc-tennis/rankserver/internal/domain"
	"github.com/stc-tennis/rankserver/internal/points"
	"github.com/stc-tennis/rankserver/internal/reconcile"
	"github.com/stc-tennis/rankserver/internal/storage"
	"github.com/stc-tennis/rankserver/internal/tier"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RatingService owns every mutation of player points: per-match updates,
// reversals on deletion and the season reset. The match ledger it writes is
// the source of truth from which point histories are reconstructed.
type RatingService struct {
	playerStorage storage.PlayerStorage
	matchStorage  storage.MatchStorage
	journal       *reconcile.Journal
	cfg           config.Rating
	log           *logrus.Entry
	locks         playerLocks
}

func New(
	playerStorage storage.PlayerStorage,
	matchStorage storage.MatchStorage,
	journal *reconcile.Journal,
	cfg config.Rating,
	log *logrus.Logger,
) *RatingService {
	return &RatingService{
		playerStorage: playerStorage,
		matchStorage:  matchStorage,
		journal:       journal,
		cfg:           cfg,
		log:           log.WithField("component", "rating"),
	}
}

// playerLocks serializes point mutations per player. Updates to different
// players stay fully concurrent. Mutexes are kept for the life of the
// service, one per player ever touched; the roster is club-sized and
// eviction would race with a concurrent lock, so nothing is evicted.
type playerLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (l *playerLocks) lock(id uuid.UUID) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()
	m.Lock()
	return m.Unlock
}

func (s *RatingService) ListPlayers() ([]domain.Player, error) {
	return s.playerStorage.ListPlayers()
}

func (s *RatingService) Get(id uuid.UUID) (domain.Player, error) {
	return s.playerStorage.Get(id)
}

// CreatePlayer registers an approved club member with both point columns
// seeded to the baseline and the tier derived from that seed.
func (s *RatingService) CreatePlayer(name, studentID string) (domain.Player, error) {
	var errs error
	if name == "" {
		errs = errors.Join(errs, errors.New("player name must not be empty"))
	}
	if studentID == "" {
		errs = errors.Join(errs, errors.New("student id must not be empty"))
	}
	if errs != nil {
		return domain.Player{}, errors.Join(domain.ErrValidation, errs)
	}
	player := domain.Player{
		ID:            uuid.New(),
		Name:          name,
		StudentID:     studentID,
		SinglesPoints: s.cfg.Baseline,
		DoublesPoints: s.cfg.Baseline,
		Tier:          tier.FromPoints(s.cfg.Baseline, s.cfg.Baseline),
		RegisteredAt:  time.Now(),
	}
	return s.playerStorage.Add(player)
}

// NewMatch is a match submission before it enters the ledger.
type NewMatch struct {
	Format  domain.Format
	Winners []uuid.UUID
	Losers  []uuid.UUID
	Score   string
}

// SubmitMatch validates the submission, freezes the point magnitude into a
// new ledger entry and applies the per-player deltas. A malformed score is
// not a rejection: the calculator falls back to the format default.
// When some player updates fail after the record persisted, the returned
// error is a *domain.PartialUpdateError and the missing deltas are
// journaled for Reconcile.
func (s *RatingService) SubmitMatch(req NewMatch) (domain.Match, error) {
	if err := req.Validate(); err != nil {
		return domain.Match{}, err
	}
	for _, id := range req.participants() {
		if _, err := s.playerStorage.Get(id); err != nil {
			return domain.Match{}, fmt.Errorf("participant %s: %w", id, err)
		}
	}
	match := domain.Match{
		Format:    req.Format,
		Winners:   req.Winners,
		Losers:    req.Losers,
		Score:     req.Score,
		Magnitude: points.Magnitude(req.Format, req.Score),
		CreatedAt: time.Now(),
	}
	created, err := s.matchStorage.Create(match)
	if err != nil {
		return domain.Match{}, err
	}
	s.log.WithFields(logrus.Fields{
		"match":     created.ID,
		"format":    created.Format,
		"magnitude": created.Magnitude,
	}).Info("match recorded")
	if err := s.applyMatch(created, 1); err != nil {
		return created, err
	}
	return created, nil
}

// DeleteMatch reverses the match's effect using its own frozen magnitude,
// so a submit immediately followed by a delete restores every participant
// exactly, then removes the record.
func (s *RatingService) DeleteMatch(id int) error {
	match, err := s.matchStorage.GetMatch(id)
	if err != nil {
		return err
	}
	applyErr := s.applyMatch(match, -1)
	if err := s.matchStorage.Delete(id); err != nil {
		return err
	}
	s.log.WithField("match", id).Info("match deleted, points reversed")
	return applyErr
}

// applyMatch turns one ledger entry into an ordered list of independent
// per-player update tasks and applies them one by one. sign is +1 on
// creation and -1 on reversal. Failures do not stop the sequence: the
// remaining players still update, and the failed tasks are journaled.
func (s *RatingService) applyMatch(match domain.Match, sign int) error {
	tasks := make([]reconcile.Task, 0, 4)
	for _, id := range match.Winners {
		tasks = append(tasks, reconcile.Task{
			MatchID: match.ID,
			Player:  id,
			Format:  match.Format,
			Delta:   sign * match.Magnitude,
		})
	}
	for _, id := range match.Losers {
		tasks = append(tasks, reconcile.Task{
			MatchID: match.ID,
			Player:  id,
			Format:  match.Format,
			Delta:   -sign * match.Magnitude,
		})
	}

	var failedTasks []reconcile.Task
	var failed []uuid.UUID
	for _, task := range tasks {
		if err := s.applyTask(task); err != nil {
			s.log.WithError(err).WithFields(logrus.Fields{
				"match":  task.MatchID,
				"player": task.Player,
				"delta":  task.Delta,
			}).Error("rating update did not apply")
			failedTasks = append(failedTasks, task)
			failed = append(failed, task.Player)
		}
	}
	if len(failed) > 0 {
		s.journal.Add(failedTasks...)
		return &domain.PartialUpdateError{MatchID: match.ID, Failed: failed}
	}
	return nil
}

// applyTask adds one signed delta to a single player's point column,
// clamps at zero and re-derives the tier from both columns.
func (s *RatingService) applyTask(task reconcile.Task) error {
	unlock := s.locks.lock(task.Player)
	defer unlock()

	player, err := s.playerStorage.Get(task.Player)
	if err != nil {
		return err
	}
	next := player.Points(task.Format) + task.Delta
	if next < 0 {
		next = 0
	}
	singles, doubles := player.SinglesPoints, player.DoublesPoints
	if task.Format == domain.FormatDoubles {
		doubles = next
	} else {
		singles = next
	}
	return s.playerStorage.UpdatePoints(task.Player, task.Format, next, tier.FromPoints(singles, doubles))
}

// Reconcile retries every journaled update task. Tasks that fail again go
// back into the journal.
func (s *RatingService) Reconcile() error {
	tasks := s.journal.Drain()
	if len(tasks) == 0 {
		return nil
	}
	var stillFailing []reconcile.Task
	var errs error
	for _, task := range tasks {
		if err := s.applyTask(task); err != nil {
			stillFailing = append(stillFailing, task)
			errs = errors.Join(errs, fmt.Errorf("match %d player %s: %w", task.MatchID, task.Player, err))
			continue
		}
		s.log.WithFields(logrus.Fields{
			"match":  task.MatchID,
			"player": task.Player,
		}).Info("reconciled rating update")
	}
	s.journal.Add(stillFailing...)
	return errs
}

// GetMatches returns the ledger newest first with participant names
// resolved for display.
func (s *RatingService) GetMatches() ([]domain.MatchInfo, error) {
	matches, err := s.matchStorage.ListMatches()
	if err != nil {
		return nil, err
	}
	names, err := s.playerNames()
	if err != nil {
		return nil, err
	}
	infos := make([]domain.MatchInfo, 0, len(matches))
	for i := len(matches) - 1; i >= 0; i-- {
		infos = append(infos, domain.MatchInfo{
			Match:       matches[i],
			WinnerNames: resolveNames(names, matches[i].Winners),
			LoserNames:  resolveNames(names, matches[i].Losers),
		})
	}
	return infos, nil
}

func (s *RatingService) playerNames() (map[uuid.UUID]string, error) {
	players, err := s.playerStorage.ListPlayers()
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(players))
	for _, p := range players {
		names[p.ID] = p.Name
	}
	return names, nil
}

func resolveNames(names map[uuid.UUID]string, ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			name = "Unknown"
		}
		out = append(out, name)
	}
	return out
}
