package calendar

import (
	"testing"
	"time"

	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWorkingDaysBetween(t *testing.T) {
	monday := date(2025, 3, 3)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"monday through friday", monday, date(2025, 3, 7), 5},
		{"full aligned week", monday, monday.AddDate(0, 0, 6), 5},
		{"two full weeks", monday, date(2025, 3, 14), 10},
		{"single weekday", monday, monday, 1},
		{"single saturday", date(2025, 3, 8), date(2025, 3, 8), 0},
		{"single sunday", date(2025, 3, 9), date(2025, 3, 9), 0},
		{"weekend only", date(2025, 3, 8), date(2025, 3, 9), 0},
		{"wednesday to tuesday", date(2025, 3, 5), date(2025, 3, 11), 5},
		{"reversed range", date(2025, 3, 7), monday, 0},
		{"spans month boundary", date(2025, 2, 24), date(2025, 3, 7), 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkingDaysBetween(tt.start, tt.end))
		})
	}
}

func TestWorkingDaysBetween_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2025, 3, 3, 23, 30, 0, 0, time.UTC)
	end := time.Date(2025, 3, 7, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, WorkingDaysBetween(start, end))
}

func TestWeekBoundaries(t *testing.T) {
	start := date(2025, 3, 3)

	ws, we, err := WeekBoundaries(start, 1)
	assert.NoError(t, err)
	assert.Equal(t, start, ws)
	assert.Equal(t, date(2025, 3, 9), we)

	ws, we, err = WeekBoundaries(start, 3)
	assert.NoError(t, err)
	assert.Equal(t, date(2025, 3, 17), ws)
	assert.Equal(t, date(2025, 3, 23), we)
}

func TestWeekBoundaries_InvalidIndex(t *testing.T) {
	for _, idx := range []int{0, -1, -7} {
		_, _, err := WeekBoundaries(date(2025, 3, 3), idx)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
}

func TestWeeksSpan(t *testing.T) {
	assert.Equal(t, 0, WeeksSpan(0))
	assert.Equal(t, 0, WeeksSpan(-3))
	assert.Equal(t, 1, WeeksSpan(1))
	assert.Equal(t, 1, WeeksSpan(7))
	assert.Equal(t, 2, WeeksSpan(8))
	assert.Equal(t, 2, WeeksSpan(14))
	assert.Equal(t, 3, WeeksSpan(15))
}
