package service

import (
	"context"

	"github.com/alexanderramin/sprintcap/internal/analytics"
	"github.com/alexanderramin/sprintcap/internal/capacity"
	"github.com/alexanderramin/sprintcap/internal/domain"
)

type IterationService interface {
	Create(ctx context.Context, it *domain.Iteration) error
	GetByID(ctx context.Context, id string) (*domain.Iteration, error)
	List(ctx context.Context) ([]*domain.Iteration, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Iteration, error)
	// Update re-derives WorkingDays from the (possibly edited) date range.
	// Stored members keep their old effective capacity until RecomputeMembers
	// runs; the engine never cascades recomputation implicitly.
	Update(ctx context.Context, it *domain.Iteration) error
	// GenerateWeeks materializes the iteration's week sequence, preserving
	// existing week ids where the index already exists. Idempotent.
	GenerateWeeks(ctx context.Context, iterationID string) ([]*domain.Week, error)
	// ListWeeks returns the stored week sequence without regenerating it.
	ListWeeks(ctx context.Context, iterationID string) ([]*domain.Week, error)
	// RecomputeMembers re-derives every member's effective capacity from the
	// iteration's current working days in one transaction. Returns the number
	// of members updated.
	RecomputeMembers(ctx context.Context, iterationID string) (int, error)
	Delete(ctx context.Context, id string) error
}

type MemberService interface {
	// Upsert writes leave/availability for a stakeholder in an iteration,
	// recomputing effective capacity from the iteration's current working
	// days in the same write.
	Upsert(ctx context.Context, iterationID, stakeholderID string, leaves int, availabilityPercent float64) (*domain.CapacityMember, error)
	ListByIteration(ctx context.Context, iterationID string) ([]*domain.CapacityMember, error)
	// SetWeeklyAvailability records a stakeholder's availability for one week
	// of an iteration, deriving DaysPresent atomically with the write.
	SetWeeklyAvailability(ctx context.Context, iterationID string, weekIndex int, stakeholderID string, availabilityPercent float64) (*domain.WeeklyAvailability, error)
	Delete(ctx context.Context, id string) error
}

type TeamService interface {
	// SaveTeamFromIteration snapshots the iteration's current members into a
	// named reusable team. Point-in-time value copy: later edits to the
	// source members never change the saved team.
	SaveTeamFromIteration(ctx context.Context, iterationID, name, description string) (*domain.Team, error)
	// ApplyTeamToIteration materializes a team's definitions as fresh member
	// rows computed against the target iteration's working days. Append-only:
	// repeated application duplicates rows.
	ApplyTeamToIteration(ctx context.Context, teamID, targetIterationID string) ([]*domain.CapacityMember, error)
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	ListDefinitions(ctx context.Context, teamID string) ([]*domain.TeamDefinition, error)
	Delete(ctx context.Context, id string) error
}

type StakeholderService interface {
	Create(ctx context.Context, s *domain.Stakeholder) error
	List(ctx context.Context) ([]*domain.Stakeholder, error)
}

// MemberReport is one member's line in an iteration report.
type MemberReport struct {
	Member          domain.CapacityMember
	StakeholderName string
	Rollup          capacity.MemberRollup
	AttendanceRate  float64
}

// IterationReport is the full analytics view of one iteration.
type IterationReport struct {
	Iteration *domain.Iteration
	Members   []MemberReport
	Variance  analytics.VarianceResult
	Trend     []analytics.TrendPoint
}

// DashboardRow summarizes one iteration for the cross-iteration dashboard.
type DashboardRow struct {
	Iteration     *domain.Iteration
	MemberCount   int
	TotalCapacity float64
	VarianceLabel domain.VarianceLabel
	Active        bool
}

// DashboardReport is the cross-iteration dashboard.
type DashboardReport struct {
	Summary analytics.Summary
	Rows    []DashboardRow
}

type AnalyticsService interface {
	IterationReport(ctx context.Context, iterationID string) (*IterationReport, error)
	Dashboard(ctx context.Context) (*DashboardReport, error)
}
