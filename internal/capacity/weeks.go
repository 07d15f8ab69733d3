package capacity

import (
	"github.com/alexanderramin/sprintcap/internal/calendar"
	"github.com/alexanderramin/sprintcap/internal/domain"
)

// WeeksCount returns the number of weeks an iteration spans: the explicit
// WeeksCount when the iteration declares one, otherwise ceil(spanDays / 7).
func WeeksCount(it *domain.Iteration) int {
	if it.WeeksCount != nil {
		return *it.WeeksCount
	}
	return calendar.WeeksSpan(it.SpanDays())
}

// GenerateWeeks produces the ordered, gap-free week sequence for an
// iteration. It is a pure function of the iteration's start date and week
// count: calling it twice with the same inputs yields the same sequence.
// IDs are left empty; the persistence layer assigns them on first save.
func GenerateWeeks(it *domain.Iteration) ([]domain.Week, error) {
	count := WeeksCount(it)
	weeks := make([]domain.Week, 0, count)
	for i := 1; i <= count; i++ {
		start, end, err := calendar.WeekBoundaries(it.StartDate, i)
		if err != nil {
			return nil, err
		}
		weeks = append(weeks, domain.Week{
			IterationID: it.ID,
			WeekIndex:   i,
			WeekStart:   start,
			WeekEnd:     end,
			DaysTotal:   domain.DefaultWeekDaysTotal,
		})
	}
	return weeks, nil
}
