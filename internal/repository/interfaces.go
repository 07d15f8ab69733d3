package repository

import (
	"context"

	"github.com/alexanderramin/sprintcap/internal/domain"
)

type IterationRepo interface {
	Create(ctx context.Context, it *domain.Iteration) error
	GetByID(ctx context.Context, id string) (*domain.Iteration, error)
	List(ctx context.Context) ([]*domain.Iteration, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Iteration, error)
	Update(ctx context.Context, it *domain.Iteration) error
	Delete(ctx context.Context, id string) error
}

type MemberRepo interface {
	Create(ctx context.Context, m *domain.CapacityMember) error
	GetByID(ctx context.Context, id string) (*domain.CapacityMember, error)
	ListByIteration(ctx context.Context, iterationID string) ([]*domain.CapacityMember, error)
	// FindByIterationAndStakeholder returns the oldest matching row, or nil
	// when the stakeholder has no row in the iteration. Duplicate rows can
	// exist after repeated team application; upsert targets the first.
	FindByIterationAndStakeholder(ctx context.Context, iterationID, stakeholderID string) (*domain.CapacityMember, error)
	Update(ctx context.Context, m *domain.CapacityMember) error
	Delete(ctx context.Context, id string) error
}

type WeekRepo interface {
	Create(ctx context.Context, w *domain.Week) error
	ListByIteration(ctx context.Context, iterationID string) ([]*domain.Week, error)
	Update(ctx context.Context, w *domain.Week) error
	// DeleteAboveIndex removes weeks with week_index > maxIndex, used when a
	// regenerated iteration spans fewer weeks than before.
	DeleteAboveIndex(ctx context.Context, iterationID string, maxIndex int) error
}

type AvailabilityRepo interface {
	Create(ctx context.Context, a *domain.WeeklyAvailability) error
	GetByWeekAndStakeholder(ctx context.Context, weekID, stakeholderID string) (*domain.WeeklyAvailability, error)
	ListByWeek(ctx context.Context, weekID string) ([]*domain.WeeklyAvailability, error)
	ListByIteration(ctx context.Context, iterationID string) ([]*domain.WeeklyAvailability, error)
	Update(ctx context.Context, a *domain.WeeklyAvailability) error
}

type TeamRepo interface {
	Create(ctx context.Context, t *domain.Team) error
	CreateDefinition(ctx context.Context, d *domain.TeamDefinition) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	ListDefinitions(ctx context.Context, teamID string) ([]*domain.TeamDefinition, error)
	CountTeams(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}

type StakeholderRepo interface {
	Create(ctx context.Context, s *domain.Stakeholder) error
	GetByID(ctx context.Context, id string) (*domain.Stakeholder, error)
	List(ctx context.Context) ([]*domain.Stakeholder, error)
}
