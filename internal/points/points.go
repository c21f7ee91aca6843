package points

import (
	"errors"
	"strconv"
	"strings"

	"github.com/stc-tennis/rankserver/internal/domain"
)

// ErrMalformedScore means the score text did not split into two integers.
// Callers fall back to the default magnitude instead of rejecting the match.
var ErrMalformedScore = errors.New("malformed score")

const (
	fallbackSingles = 30
	fallbackDoubles = 10
)

// ParseScore splits a reported set score like "6-4" or "6 - 0" into the
// winner's and loser's game counts. Only structural parseability is
// checked, tennis legality is not.
func ParseScore(s string) (winnerGames, loserGames int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return 0, 0, ErrMalformedScore
	}
	winnerGames, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, ErrMalformedScore
	}
	loserGames, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, ErrMalformedScore
	}
	return winnerGames, loserGames, nil
}

// Magnitude returns the unsigned point value one match moves per player.
// The table is keyed on the loser's game count against the conventional
// six-game set. Unparsable or out-of-range scores use the format default.
func Magnitude(format domain.Format, score string) int {
	_, loserGames, err := ParseScore(score)
	if err != nil {
		if format == domain.FormatDoubles {
			return fallbackDoubles
		}
		return fallbackSingles
	}
	if format == domain.FormatDoubles {
		switch loserGames {
		case 0:
			return 15
		case 1:
			return 14
		case 2:
			return 12
		case 3:
			return 10
		case 4:
			return 8
		case 5:
			return 6
		default:
			return fallbackDoubles
		}
	}
	switch loserGames {
	case 0:
		return 45
	case 1:
		return 41
	case 2:
		return 36
	case 3:
		return 30
	case 4:
		return 24
	case 5:
		return 18
	default:
		return fallbackSingles
	}
}
