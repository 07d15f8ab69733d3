// Package calendar holds the pure date arithmetic the capacity engine is
// built on: working-day counts and deterministic week boundaries. No holiday
// calendar is modeled; weekends are the only exclusion.
package calendar

import (
	"fmt"
	"time"

	"github.com/alexanderramin/sprintcap/internal/domain"
)

// WorkingDaysBetween counts Monday-Friday days in [start, end] inclusive.
// A reversed range returns 0 rather than an error so dependent values stay
// computable while a date range is mid-edit.
func WorkingDaysBetween(start, end time.Time) int {
	start = truncateDay(start)
	end = truncateDay(end)
	if start.After(end) {
		return 0
	}
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d) {
			count++
		}
	}
	return count
}

// IsWorkingDay reports whether d falls on Monday through Friday.
func IsWorkingDay(d time.Time) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// WeekBoundaries returns the start and end dates of the 1-based weekIndex-th
// week of an iteration starting at iterationStart. Weeks are fixed 7-day
// slices: start + 7*(index-1) through start + 7*(index-1) + 6.
func WeekBoundaries(iterationStart time.Time, weekIndex int) (time.Time, time.Time, error) {
	if weekIndex < 1 {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: week index %d must be >= 1", domain.ErrInvalidArgument, weekIndex)
	}
	weekStart := truncateDay(iterationStart).AddDate(0, 0, 7*(weekIndex-1))
	weekEnd := weekStart.AddDate(0, 0, 6)
	return weekStart, weekEnd, nil
}

// WeeksSpan returns ceil(spanDays / 7), the number of 7-day slices needed to
// cover an inclusive calendar span. Zero or negative spans yield 0.
func WeeksSpan(spanDays int) int {
	if spanDays <= 0 {
		return 0
	}
	return (spanDays + 6) / 7
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
