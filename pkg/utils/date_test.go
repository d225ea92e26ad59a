package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateIn(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)

	date, err := ParseDateIn("2025-03-15", loc)
	require.NoError(t, err)
	assert.Equal(t, 15, date.Day())
	assert.Equal(t, loc, date.Location())

	_, err = ParseDateIn("15/03/2025", loc)
	assert.Error(t, err)
}

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"mesmo mês", time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"virada de ano", time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 3},
		{"data futura", time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.from, tt.to))
		})
	}
}

func TestStartOfDayAndFirstDayOfMonth(t *testing.T) {
	date := time.Date(2025, 7, 19, 18, 45, 3, 10, time.UTC)

	assert.Equal(t, time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC), StartOfDay(date))
	assert.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), FirstDayOfMonth(date))
}
