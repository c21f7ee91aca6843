package web

import (
	"errors"
	"strings"

	"github.com/stc-tennis/rankserver/internal/domain"
	"github.com/stc-tennis/rankserver/internal/service"

	"github.com/google/uuid"
)

type createMatch struct {
	Format  string      `json:"format"`
	Winners []uuid.UUID `json:"winnerIds"`
	Losers  []uuid.UUID `json:"loserIds"`
	Score   string      `json:"score"`
}

var ErrUnknownFormat = errors.New("format must be Singles or Doubles")
var ErrMissingSide = errors.New("both sides must have players")

func (c createMatch) Validate() error {
	var err error
	if _, perr := parseFormat(c.Format); perr != nil {
		err = errors.Join(err, perr)
	}
	if len(c.Winners) == 0 || len(c.Losers) == 0 {
		err = errors.Join(err, ErrMissingSide)
	}
	return err
}

func (c createMatch) convertToNewMatch() service.NewMatch {
	format, _ := parseFormat(c.Format)
	return service.NewMatch{
		Format:  format,
		Winners: c.Winners,
		Losers:  c.Losers,
		Score:   c.Score,
	}
}

func parseFormat(s string) (domain.Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singles":
		return domain.FormatSingles, nil
	case "doubles":
		return domain.FormatDoubles, nil
	default:
		return "", ErrUnknownFormat
	}
}

type createPlayer struct {
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
}
