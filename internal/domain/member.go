package domain

import "time"

// CapacityMember is one (iteration, person) row. EffectiveCapacityDays is
// always recomputed from Leaves, AvailabilityPercent and the iteration's
// working days in the same write that changes any of the inputs; it is never
// edited on its own.
type CapacityMember struct {
	ID                    string
	IterationID           string
	StakeholderID         string
	Leaves                int
	AvailabilityPercent   float64
	EffectiveCapacityDays float64
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
