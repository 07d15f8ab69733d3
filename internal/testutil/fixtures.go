package testutil

import (
	"time"

	"github.com/alexanderramin/sprintcap/internal/calendar"
	"github.com/alexanderramin/sprintcap/internal/capacity"
	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/google/uuid"
)

// Iteration options
type IterationOption func(*domain.Iteration)

func WithDates(start, end time.Time) IterationOption {
	return func(it *domain.Iteration) {
		it.StartDate = start
		it.EndDate = end
		it.WorkingDays = calendar.WorkingDaysBetween(start, end)
	}
}

func WithWeeksCount(n int) IterationOption {
	return func(it *domain.Iteration) {
		it.WeeksCount = &n
	}
}

func WithCommittedPoints(p float64) IterationOption {
	return func(it *domain.Iteration) {
		it.CommittedPoints = p
	}
}

func WithProjectID(id string) IterationOption {
	return func(it *domain.Iteration) {
		it.ProjectID = id
	}
}

// NewTestIteration builds a two-week Monday-to-Friday iteration
// (2025-03-03 through 2025-03-14, 10 working days) unless overridden.
func NewTestIteration(name string, opts ...IterationOption) *domain.Iteration {
	now := time.Now().UTC()
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	it := &domain.Iteration{
		ID:              uuid.New().String(),
		Name:            name,
		StartDate:       start,
		EndDate:         end,
		WorkingDays:     calendar.WorkingDaysBetween(start, end),
		CommittedPoints: 20,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Member options
type MemberOption func(*domain.CapacityMember)

func WithLeaves(n int) MemberOption {
	return func(m *domain.CapacityMember) {
		m.Leaves = n
	}
}

func WithAvailability(pct float64) MemberOption {
	return func(m *domain.CapacityMember) {
		m.AvailabilityPercent = pct
	}
}

// NewTestMember builds a full-availability member with effective capacity
// derived from the given iteration's working days.
func NewTestMember(it *domain.Iteration, stakeholderID string, opts ...MemberOption) *domain.CapacityMember {
	now := time.Now().UTC()
	m := &domain.CapacityMember{
		ID:                  uuid.New().String(),
		IterationID:         it.ID,
		StakeholderID:       stakeholderID,
		AvailabilityPercent: 100,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.EffectiveCapacityDays = capacity.EffectiveCapacity(it.WorkingDays, m.Leaves, m.AvailabilityPercent)
	return m
}

// NewTestStakeholder builds a directory entry.
func NewTestStakeholder(name string) *domain.Stakeholder {
	return &domain.Stakeholder{
		ID:        uuid.New().String(),
		Name:      name,
		Role:      "engineer",
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestWeek builds the weekIndex-th week of the iteration with the default
// working-day count.
func NewTestWeek(it *domain.Iteration, weekIndex int) *domain.Week {
	start, end, err := calendar.WeekBoundaries(it.StartDate, weekIndex)
	if err != nil {
		panic(err)
	}
	return &domain.Week{
		ID:          uuid.New().String(),
		IterationID: it.ID,
		WeekIndex:   weekIndex,
		WeekStart:   start,
		WeekEnd:     end,
		DaysTotal:   domain.DefaultWeekDaysTotal,
	}
}

// NewTestAvailability builds a weekly availability row with derived days
// present.
func NewTestAvailability(weekID, stakeholderID string, pct float64) *domain.WeeklyAvailability {
	now := time.Now().UTC()
	return &domain.WeeklyAvailability{
		ID:                  uuid.New().String(),
		WeekID:              weekID,
		StakeholderID:       stakeholderID,
		AvailabilityPercent: pct,
		DaysPresent:         capacity.DaysPresent(pct, domain.DefaultWeekDaysTotal),
		DaysTotal:           domain.DefaultWeekDaysTotal,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}
