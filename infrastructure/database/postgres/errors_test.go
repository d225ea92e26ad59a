package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantUnique      bool
		wantInvalid     bool
		wantPassThrough bool
	}{
		{
			name:            "nil continua nil",
			err:             nil,
			wantPassThrough: true,
		},
		{
			name:            "ErrNoRows não é convertido",
			err:             sql.ErrNoRows,
			wantPassThrough: true,
		},
		{
			name:       "violação de unique vira ErrUniqueViolation",
			err:        &pq.Error{Code: "23505", Constraint: "pilot_daily_recommendations_user_date_key"},
			wantUnique: true,
		},
		{
			name:        "violação de check vira ErrInvalidEntity",
			err:         &pq.Error{Code: "23514", Constraint: "transactions_interval_check"},
			wantInvalid: true,
		},
		{
			name:            "erro genérico é preservado",
			err:             errors.New("connection refused"),
			wantPassThrough: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := MapError(tt.err)

			if tt.wantPassThrough {
				assert.Equal(t, tt.err, mapped)
				return
			}

			assert.Equal(t, tt.wantUnique, errors.Is(mapped, ErrUniqueViolation))
			assert.Equal(t, tt.wantInvalid, errors.Is(mapped, ErrInvalidEntity))
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	raw := &pq.Error{Code: "23505"}

	assert.True(t, IsUniqueViolation(raw))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", raw)))
	assert.True(t, IsUniqueViolation(MapError(raw)))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(nil))
}
