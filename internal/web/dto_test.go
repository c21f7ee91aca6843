package web

import (
	"testing"

	"github.com/google/uuid"
)

func Test_createMatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		match   createMatch
		wantErr bool
	}{
		{
			name: "singles",
			match: createMatch{
				Format:  "Singles",
				Winners: []uuid.UUID{uuid.NameSpaceDNS},
				Losers:  []uuid.UUID{uuid.NameSpaceURL},
				Score:   "6-3",
			},
			wantErr: false,
		},
		{
			name: "doubles lowercase format",
			match: createMatch{
				Format:  "doubles",
				Winners: []uuid.UUID{uuid.NameSpaceDNS, uuid.NameSpaceOID},
				Losers:  []uuid.UUID{uuid.NameSpaceURL, uuid.NameSpaceX500},
				Score:   "6-4",
			},
			wantErr: false,
		},
		{
			name: "unknown format",
			match: createMatch{
				Format:  "triples",
				Winners: []uuid.UUID{uuid.NameSpaceDNS},
				Losers:  []uuid.UUID{uuid.NameSpaceURL},
				Score:   "6-3",
			},
			wantErr: true,
		},
		{
			name: "missing winners",
			match: createMatch{
				Format: "Singles",
				Losers: []uuid.UUID{uuid.NameSpaceURL},
				Score:  "6-3",
			},
			wantErr: true,
		},
		{
			name: "missing losers",
			match: createMatch{
				Format:  "Singles",
				Winners: []uuid.UUID{uuid.NameSpaceDNS},
				Score:   "6-3",
			},
			wantErr: true,
		},
		{
			name:    "empty request",
			match:   createMatch{},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.match.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
