package dbretry_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/arbiterhq/arbiter/internal/database/dbretry"
	"github.com/stretchr/testify/assert"
)

// wireError mimics a driver error carrying SQLSTATE fields.
type wireError struct{ code string }

func (e wireError) Error() string { return "SQLSTATE " + e.code }

func (e wireError) Field(field byte) string {
	if field == 'C' {
		return e.code
	}

	return ""
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
		{
			name: "unique violation",
			err:  wireError{code: "23505"},
			want: true,
		},
		{
			name: "wrapped unique violation",
			err:  fmt.Errorf("failed to insert report: %w", wireError{code: "23505"}),
			want: true,
		},
		{
			name: "other sqlstate",
			err:  wireError{code: "40001"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, dbretry.IsUniqueViolation(tt.err))
		})
	}
}
