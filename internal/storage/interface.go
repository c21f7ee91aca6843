package storage

import (
	"github.com/stc-tennis/rankserver/internal/domain"

	"github.com/google/uuid"
)

type PlayerStorage interface {
	ListPlayers() ([]domain.Player, error)
	Get(uuid.UUID) (domain.Player, error)
	Add(domain.Player) (domain.Player, error)

	// UpdatePoints writes one format's point column together with the
	// re-derived tier. Updates to different players are independent, the
	// store is not expected to offer multi-row transactions.
	UpdatePoints(id uuid.UUID, format domain.Format, points int, tier domain.Tier) error
}

type MatchStorage interface {
	ListMatches() ([]domain.Match, error)
	ListByPlayer(id uuid.UUID) ([]domain.Match, error)
	GetMatch(id int) (domain.Match, error)
	Create(domain.Match) (domain.Match, error)
	Delete(id int) error
}
