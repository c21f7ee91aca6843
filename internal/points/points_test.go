package points

import (
	"errors"
	"testing"

	"github.com/stc-tennis/rankserver/internal/domain"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name       string
		score      string
		wantWinner int
		wantLoser  int
		wantErr    bool
	}{
		{
			name:       "plain",
			score:      "6-4",
			wantWinner: 6,
			wantLoser:  4,
		},
		{
			name:       "spaces",
			score:      "6 - 0",
			wantWinner: 6,
			wantLoser:  0,
		},
		{
			name:       "surrounding whitespace",
			score:      " 7-5 ",
			wantWinner: 7,
			wantLoser:  5,
		},
		{
			name:    "not a number",
			score:   "abc",
			wantErr: true,
		},
		{
			name:    "one side missing",
			score:   "6-",
			wantErr: true,
		},
		{
			name:    "too many parts",
			score:   "6-4-2",
			wantErr: true,
		},
		{
			name:    "empty",
			score:   "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, l, err := ParseScore(tt.score)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScore() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, ErrMalformedScore) {
					t.Errorf("ParseScore() error = %v, want ErrMalformedScore", err)
				}
				return
			}
			if w != tt.wantWinner || l != tt.wantLoser {
				t.Errorf("ParseScore() = (%d, %d), want (%d, %d)", w, l, tt.wantWinner, tt.wantLoser)
			}
		})
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		name   string
		format domain.Format
		score  string
		want   int
	}{
		{name: "singles 6-0", format: domain.FormatSingles, score: "6-0", want: 45},
		{name: "singles 6-1", format: domain.FormatSingles, score: "6-1", want: 41},
		{name: "singles 6-2", format: domain.FormatSingles, score: "6-2", want: 36},
		{name: "singles 6-3", format: domain.FormatSingles, score: "6-3", want: 30},
		{name: "singles 6-4", format: domain.FormatSingles, score: "6-4", want: 24},
		{name: "singles 6-5", format: domain.FormatSingles, score: "6-5", want: 18},
		{name: "singles 7-6", format: domain.FormatSingles, score: "7-6", want: 30},
		{name: "singles malformed", format: domain.FormatSingles, score: "abc", want: 30},
		{name: "doubles 6-0", format: domain.FormatDoubles, score: "6-0", want: 15},
		{name: "doubles 6-1", format: domain.FormatDoubles, score: "6-1", want: 14},
		{name: "doubles 6-2", format: domain.FormatDoubles, score: "6-2", want: 12},
		{name: "doubles 6-3", format: domain.FormatDoubles, score: "6-3", want: 10},
		{name: "doubles 6-4", format: domain.FormatDoubles, score: "6-4", want: 8},
		{name: "doubles 6-5", format: domain.FormatDoubles, score: "6-5", want: 6},
		{name: "doubles 7-6", format: domain.FormatDoubles, score: "7-6", want: 10},
		{name: "doubles malformed", format: domain.FormatDoubles, score: "n/a", want: 10},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Magnitude(tt.format, tt.score)
			if got != tt.want {
				t.Errorf("Magnitude() = %d, want %d", got, tt.want)
			}
			if got < 0 {
				t.Errorf("Magnitude() = %d, must be non-negative", got)
			}
			if again := Magnitude(tt.format, tt.score); again != got {
				t.Errorf("Magnitude() not deterministic: %d then %d", got, again)
			}
		})
	}
}
