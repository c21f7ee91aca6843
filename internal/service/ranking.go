package service

import (
	"sort"

	"github.com/stc-tennis/rankserver/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GetRanking orders every player by the format's points descending. Ties
// are broken by locale-aware name collation and then student id, so the
// order is fully deterministic. Rank numbers use standard competition
// ranking: equal points share a rank and the next distinct value skips by
// the tied count.
func (s *RatingService) GetRanking(format domain.Format) ([]domain.RankedPlayer, error) {
	players, err := s.playerStorage.ListPlayers()
	if err != nil {
		return nil, err
	}
	// collators buffer internally and are not safe to share across calls
	c := collate.New(s.collationTag())
	sort.SliceStable(players, func(i, j int) bool {
		pi, pj := players[i].Points(format), players[j].Points(format)
		if pi != pj {
			return pi > pj
		}
		if cmp := c.CompareString(players[i].Name, players[j].Name); cmp != 0 {
			return cmp < 0
		}
		return players[i].StudentID < players[j].StudentID
	})

	ranked := make([]domain.RankedPlayer, 0, len(players))
	currentRank := 1
	atRank := 0
	prevPoints := 0
	for i, p := range players {
		pts := p.Points(format)
		if i == 0 || pts != prevPoints {
			currentRank += atRank
			atRank = 1
			prevPoints = pts
		} else {
			atRank++
		}
		ranked = append(ranked, domain.RankedPlayer{
			Player:       p,
			FormatPoints: pts,
			Rank:         currentRank,
		})
	}
	return ranked, nil
}

func (s *RatingService) collationTag() language.Tag {
	tag, err := language.Parse(s.cfg.Collation)
	if err != nil {
		return language.Korean
	}
	return tag
}
