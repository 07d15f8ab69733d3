package domain

import "time"

// Week is a derived, contiguous 7-day slice of an iteration. WeekIndex is
// 1-based and gap-free; boundaries follow deterministically from the
// iteration start date.
type Week struct {
	ID          string
	IterationID string
	WeekIndex   int
	WeekStart   time.Time
	WeekEnd     time.Time
	DaysTotal   int
}

// WeeklyAvailability is one (week, person) row. DaysPresent is derived from
// the percentage and DaysTotal and recomputed whenever either input changes.
type WeeklyAvailability struct {
	ID                  string
	WeekID              string
	StakeholderID       string
	AvailabilityPercent float64
	DaysPresent         int
	DaysTotal           int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
