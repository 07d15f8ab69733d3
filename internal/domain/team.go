package domain

import "time"

// Team is a named, reusable snapshot of a member composition. It holds value
// copies of each member's defaults and no live link back to the iteration it
// was captured from; SourceIterationID is provenance metadata only and is
// never read back for computation.
type Team struct {
	ID                string
	Name              string
	Description       string
	SourceIterationID string
	CreatedAt         time.Time
}

// TeamDefinition is one (team, person) row of snapshot defaults. The
// stakeholder reference is live for display labeling; the numeric defaults
// are frozen copies.
type TeamDefinition struct {
	ID                         string
	TeamID                     string
	StakeholderID              string
	DefaultAvailabilityPercent float64
	DefaultLeaves              int
}
