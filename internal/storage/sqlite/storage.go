package sqlite

import (
	"database/sql"
	"errors"

	"github.com/stc-tennis/rankserver/gen/model"
	"github.com/stc-tennis/rankserver/gen/table"
	"github.com/stc-tennis/rankserver/internal/domain"
	"github.com/stc-tennis/rankserver/internal/storage"

	"github.com/go-jet/jet/v2/qrm"
	jet "github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
)

type Storage struct {
	db *sql.DB
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

func New(db *sql.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) ListPlayers() ([]domain.Player, error) {
	var players []model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		Query(s.db, &players)
	if err != nil {
		return nil, err
	}
	return convertPlayersToDomain(players)
}

func (s *Storage) Get(id uuid.UUID) (domain.Player, error) {
	var player model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(table.Players.ID.EQ(jet.String(id.String()))).
		Query(s.db, &player)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Player{}, domain.ErrPlayerNotFound
		}
		return domain.Player{}, err
	}
	return convertPlayerToDomain(player)
}

func (s *Storage) Add(player domain.Player) (domain.Player, error) {
	row := convertPlayerFromDomain(player)
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(row).
		Exec(s.db)
	if err != nil {
		return domain.Player{}, err
	}
	return player, nil
}

func (s *Storage) UpdatePoints(id uuid.UUID, format domain.Format, points int, tier domain.Tier) error {
	pointsColumn := table.Players.SinglesPoints
	if format == domain.FormatDoubles {
		pointsColumn = table.Players.DoublesPoints
	}
	res, err := table.Players.
		UPDATE(pointsColumn, table.Players.Tier).
		SET(jet.Int32(int32(points)), jet.String(string(tier))).
		WHERE(table.Players.ID.EQ(jet.String(id.String()))).
		Exec(s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func (s *Storage) ListMatches() ([]domain.Match, error) {
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		ORDER_BY(table.Matches.CreatedAt.ASC(), table.Matches.ID.ASC()).
		Query(s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertMatchesToDomain(matches)
}

func (s *Storage) ListByPlayer(id uuid.UUID) ([]domain.Match, error) {
	idExpr := jet.String(id.String())
	var matches []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(
			table.Matches.WinnerID.EQ(idExpr).
				OR(table.Matches.LoserID.EQ(idExpr)).
				OR(table.Matches.WinnerPartnerID.EQ(idExpr)).
				OR(table.Matches.LoserPartnerID.EQ(idExpr)),
		).
		ORDER_BY(table.Matches.CreatedAt.ASC(), table.Matches.ID.ASC()).
		Query(s.db, &matches)
	if err != nil {
		return nil, err
	}
	return convertMatchesToDomain(matches)
}

func (s *Storage) GetMatch(id int) (domain.Match, error) {
	var match model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.ID.EQ(jet.Int32(int32(id)))).
		Query(s.db, &match)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.Match{}, domain.ErrMatchNotFound
		}
		return domain.Match{}, err
	}
	return convertMatchToDomain(match)
}

func (s *Storage) Create(match domain.Match) (domain.Match, error) {
	row := convertMatchFromDomain(match)
	var created model.Matches
	err := table.Matches.
		INSERT(table.Matches.MutableColumns).
		MODEL(row).
		RETURNING(table.Matches.AllColumns).
		Query(s.db, &created)
	if err != nil {
		return domain.Match{}, err
	}
	return convertMatchToDomain(created)
}

func (s *Storage) Delete(id int) error {
	res, err := table.Matches.
		DELETE().
		WHERE(table.Matches.ID.EQ(jet.Int32(int32(id)))).
		Exec(s.db)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
