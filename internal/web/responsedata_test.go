package web

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func Test_errorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "single error",
			err:  errors.New("boom"),
			want: []string{"boom"},
		},
		{
			name: "joined errors flatten",
			err:  errors.Join(errors.New("first"), errors.New("second")),
			want: []string{"first", "second"},
		},
		{
			name: "nested joins flatten in order",
			err: errors.Join(
				errors.New("outer"),
				errors.Join(errors.New("inner one"), errors.New("inner two")),
			),
			want: []string{"outer", "inner one", "inner two"},
		},
		{
			name: "wrapped error stays one message",
			err:  fmt.Errorf("context: %w", errors.New("cause")),
			want: []string{"context: cause"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := errorMessages(tt.err); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("errorMessages() = %v, want %v", got, tt.want)
			}
		})
	}
}
