package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/sprintcap/internal/capacity"
	"github.com/alexanderramin/sprintcap/internal/db"
	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/repository"
	"github.com/google/uuid"
)

type teamService struct {
	teams      repository.TeamRepo
	iterations repository.IterationRepo
	members    repository.MemberRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

// NewTeamService creates the team template service.
func NewTeamService(
	teams repository.TeamRepo,
	iterations repository.IterationRepo,
	members repository.MemberRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TeamService {
	return &teamService{
		teams:      teams,
		iterations: iterations,
		members:    members,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *teamService) SaveTeamFromIteration(ctx context.Context, iterationID, name, description string) (team *domain.Team, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"iteration_id": iterationID, "team": name}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "save-team",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: team name is required", domain.ErrValidation)
	}

	sourceMembers, err := s.members.ListByIteration(ctx, iterationID)
	if err != nil {
		return nil, err
	}
	if len(sourceMembers) == 0 {
		return nil, fmt.Errorf("%w: iteration %s has no members to snapshot", domain.ErrValidation, iterationID)
	}
	fields["member_count"] = len(sourceMembers)

	team = &domain.Team{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(name),
		Description:       description,
		SourceIterationID: iterationID,
		CreatedAt:         time.Now().UTC(),
	}

	// The team and its definitions land in one transaction: a half-written
	// snapshot would defeat the point of a template.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTeams := repository.NewSQLiteTeamRepo(tx)

		if err := txTeams.Create(ctx, team); err != nil {
			return err
		}
		for _, m := range sourceMembers {
			def := &domain.TeamDefinition{
				ID:                         uuid.New().String(),
				TeamID:                     team.ID,
				StakeholderID:              m.StakeholderID,
				DefaultAvailabilityPercent: m.AvailabilityPercent,
				DefaultLeaves:              m.Leaves,
			}
			if err := txTeams.CreateDefinition(ctx, def); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("saving team: %w", err)
	}
	return team, nil
}

func (s *teamService) ApplyTeamToIteration(ctx context.Context, teamID, targetIterationID string) (created []*domain.CapacityMember, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"team_id": teamID, "iteration_id": targetIterationID}
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "apply-team",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if _, err = s.teams.GetByID(ctx, teamID); err != nil {
		return nil, err
	}
	defs, err := s.teams.ListDefinitions(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if len(defs) == 0 {
		return nil, domain.ErrEmptyTeam
	}
	fields["member_count"] = len(defs)

	target, err := s.iterations.GetByID(ctx, targetIterationID)
	if err != nil {
		return nil, err
	}

	// Effective capacity is computed against the target iteration's working
	// days, never the working days of the iteration the team was captured
	// from. A team saved in a 10-day sprint applied to a 14-day sprint scales
	// to 14 days.
	now := time.Now().UTC()
	created = make([]*domain.CapacityMember, 0, len(defs))
	for _, def := range defs {
		created = append(created, &domain.CapacityMember{
			ID:                    uuid.New().String(),
			IterationID:           target.ID,
			StakeholderID:         def.StakeholderID,
			Leaves:                def.DefaultLeaves,
			AvailabilityPercent:   def.DefaultAvailabilityPercent,
			EffectiveCapacityDays: capacity.EffectiveCapacity(target.WorkingDays, def.DefaultLeaves, def.DefaultAvailabilityPercent),
			CreatedAt:             now,
			UpdatedAt:             now,
		})
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMembers := repository.NewSQLiteMemberRepo(tx)
		for _, m := range created {
			if err := txMembers.Create(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("applying team: %w", err)
	}
	return created, nil
}

func (s *teamService) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	return s.teams.GetByID(ctx, id)
}

func (s *teamService) List(ctx context.Context) ([]*domain.Team, error) {
	return s.teams.List(ctx)
}

func (s *teamService) ListDefinitions(ctx context.Context, teamID string) ([]*domain.TeamDefinition, error) {
	return s.teams.ListDefinitions(ctx, teamID)
}

func (s *teamService) Delete(ctx context.Context, id string) error {
	return s.teams.Delete(ctx, id)
}
