package sqlite

import (
	"fmt"

	"github.com/stc-tennis/rankserver/gen/model"
	"github.com/stc-tennis/rankserver/internal/domain"

	"github.com/google/uuid"
)

func convertPlayerToDomain(player model.Players) (domain.Player, error) {
	id, err := uuid.Parse(player.ID)
	if err != nil {
		return domain.Player{}, fmt.Errorf("player %q: %w", player.ID, err)
	}
	return domain.Player{
		ID:            id,
		Name:          player.Name,
		StudentID:     player.StudentID,
		SinglesPoints: int(player.SinglesPoints),
		DoublesPoints: int(player.DoublesPoints),
		Tier:          domain.Tier(player.Tier),
		RegisteredAt:  player.CreatedAt,
	}, nil
}

func convertPlayersToDomain(players []model.Players) ([]domain.Player, error) {
	converted := make([]domain.Player, 0, len(players))
	for _, player := range players {
		p, err := convertPlayerToDomain(player)
		if err != nil {
			return nil, err
		}
		converted = append(converted, p)
	}
	return converted, nil
}

func convertPlayerFromDomain(player domain.Player) model.Players {
	return model.Players{
		ID:            player.ID.String(),
		Name:          player.Name,
		StudentID:     player.StudentID,
		SinglesPoints: int32(player.SinglesPoints),
		DoublesPoints: int32(player.DoublesPoints),
		Tier:          string(player.Tier),
		CreatedAt:     player.RegisteredAt,
	}
}

func convertMatchToDomain(match model.Matches) (domain.Match, error) {
	winnerID, err := uuid.Parse(match.WinnerID)
	if err != nil {
		return domain.Match{}, fmt.Errorf("match %d winner: %w", match.ID, err)
	}
	loserID, err := uuid.Parse(match.LoserID)
	if err != nil {
		return domain.Match{}, fmt.Errorf("match %d loser: %w", match.ID, err)
	}
	winners := []uuid.UUID{winnerID}
	losers := []uuid.UUID{loserID}
	if match.WinnerPartnerID != nil {
		partner, err := uuid.Parse(*match.WinnerPartnerID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("match %d winner partner: %w", match.ID, err)
		}
		winners = append(winners, partner)
	}
	if match.LoserPartnerID != nil {
		partner, err := uuid.Parse(*match.LoserPartnerID)
		if err != nil {
			return domain.Match{}, fmt.Errorf("match %d loser partner: %w", match.ID, err)
		}
		losers = append(losers, partner)
	}
	return domain.Match{
		ID:        int(match.ID),
		Format:    domain.Format(match.Format),
		Winners:   winners,
		Losers:    losers,
		Score:     match.Score,
		Magnitude: int(match.PointMagnitude),
		CreatedAt: match.CreatedAt,
	}, nil
}

func convertMatchesToDomain(matches []model.Matches) ([]domain.Match, error) {
	converted := make([]domain.Match, 0, len(matches))
	for _, match := range matches {
		m, err := convertMatchToDomain(match)
		if err != nil {
			return nil, err
		}
		converted = append(converted, m)
	}
	return converted, nil
}

func convertMatchFromDomain(match domain.Match) model.Matches {
	row := model.Matches{
		ID:             int32(match.ID),
		Format:         string(match.Format),
		WinnerID:       match.Winners[0].String(),
		LoserID:        match.Losers[0].String(),
		Score:          match.Score,
		PointMagnitude: int32(match.Magnitude),
		CreatedAt:      match.CreatedAt,
	}
	if len(match.Winners) > 1 {
		partner := match.Winners[1].String()
		row.WinnerPartnerID = &partner
	}
	if len(match.Losers) > 1 {
		partner := match.Losers[1].String()
		row.LoserPartnerID = &partner
	}
	return row
}
