package domain

import (
	"fmt"
	"time"
)

// Iteration is a named planning time box owned by a project. WorkingDays is
// derived from the date range and refreshed whenever the range changes; it is
// never an independent source of truth.
type Iteration struct {
	ID        string
	ProjectID string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	// WeeksCount, when set, overrides the derived week count so an iteration
	// can declare explicit week boundaries independent of its date span.
	WeeksCount      *int
	WorkingDays     int
	CommittedPoints float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate checks the fields a planner supplies directly. Derived fields are
// exempt: degenerate ranges compute to zero working days rather than failing.
func (it *Iteration) Validate() error {
	if it.Name == "" {
		return fmt.Errorf("%w: iteration name is required", ErrValidation)
	}
	if it.EndDate.Before(it.StartDate) {
		return fmt.Errorf("%w: end date %s is before start date %s",
			ErrValidation, it.EndDate.Format("2006-01-02"), it.StartDate.Format("2006-01-02"))
	}
	if it.CommittedPoints < 0 {
		return fmt.Errorf("%w: committed points must be >= 0", ErrValidation)
	}
	if it.WeeksCount != nil && *it.WeeksCount < 1 {
		return fmt.Errorf("%w: weeks count must be >= 1", ErrValidation)
	}
	return nil
}

// SpanDays returns the inclusive calendar-day length of the iteration.
func (it *Iteration) SpanDays() int {
	if it.EndDate.Before(it.StartDate) {
		return 0
	}
	return int(it.EndDate.Sub(it.StartDate).Hours()/24) + 1
}

// DisplayID returns a short identifier for listings.
func (it *Iteration) DisplayID() string {
	if len(it.ID) >= 8 {
		return it.ID[:8]
	}
	return it.ID
}
