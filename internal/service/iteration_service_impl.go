package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintcap/internal/calendar"
	"github.com/alexanderramin/sprintcap/internal/capacity"
	"github.com/alexanderramin/sprintcap/internal/db"
	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/repository"
	"github.com/google/uuid"
)

type iterationService struct {
	iterations repository.IterationRepo
	weeks      repository.WeekRepo
	uow        db.UnitOfWork
	observer   UseCaseObserver
}

// NewIterationService creates the iteration planning service.
func NewIterationService(iterations repository.IterationRepo, weeks repository.WeekRepo, uow db.UnitOfWork, observers ...UseCaseObserver) IterationService {
	return &iterationService{
		iterations: iterations,
		weeks:      weeks,
		uow:        uow,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *iterationService) Create(ctx context.Context, it *domain.Iteration) error {
	if err := it.Validate(); err != nil {
		return err
	}
	it.WorkingDays = calendar.WorkingDaysBetween(it.StartDate, it.EndDate)
	return s.iterations.Create(ctx, it)
}

func (s *iterationService) GetByID(ctx context.Context, id string) (*domain.Iteration, error) {
	return s.iterations.GetByID(ctx, id)
}

func (s *iterationService) List(ctx context.Context) ([]*domain.Iteration, error) {
	return s.iterations.List(ctx)
}

func (s *iterationService) ListByProject(ctx context.Context, projectID string) ([]*domain.Iteration, error) {
	return s.iterations.ListByProject(ctx, projectID)
}

func (s *iterationService) Update(ctx context.Context, it *domain.Iteration) error {
	if err := it.Validate(); err != nil {
		return err
	}
	// Working days track the date range in the same write. Dependent member
	// rows go stale until RecomputeMembers runs; nothing cascades here.
	it.WorkingDays = calendar.WorkingDaysBetween(it.StartDate, it.EndDate)
	it.UpdatedAt = time.Now().UTC()
	return s.iterations.Update(ctx, it)
}

func (s *iterationService) GenerateWeeks(ctx context.Context, iterationID string) (weeks []*domain.Week, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-weeks",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"iteration_id": iterationID, "week_count": len(weeks)},
		})
	}()

	it, err := s.iterations.GetByID(ctx, iterationID)
	if err != nil {
		return nil, err
	}

	generated, err := capacity.GenerateWeeks(it)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txWeeks := repository.NewSQLiteWeekRepo(tx)

		existing, err := txWeeks.ListByIteration(ctx, iterationID)
		if err != nil {
			return err
		}
		byIndex := make(map[int]*domain.Week, len(existing))
		for _, w := range existing {
			byIndex[w.WeekIndex] = w
		}

		for i := range generated {
			gen := &generated[i]
			if prev, ok := byIndex[gen.WeekIndex]; ok {
				// Preserve the stored id and days_total; only boundaries move.
				gen.ID = prev.ID
				gen.DaysTotal = prev.DaysTotal
				if !prev.WeekStart.Equal(gen.WeekStart) || !prev.WeekEnd.Equal(gen.WeekEnd) {
					if err := txWeeks.Update(ctx, gen); err != nil {
						return err
					}
				}
				continue
			}
			gen.ID = uuid.New().String()
			if err := txWeeks.Create(ctx, gen); err != nil {
				return err
			}
		}

		return txWeeks.DeleteAboveIndex(ctx, iterationID, len(generated))
	})
	if err != nil {
		return nil, fmt.Errorf("generating weeks: %w", err)
	}

	weeks = make([]*domain.Week, len(generated))
	for i := range generated {
		weeks[i] = &generated[i]
	}
	return weeks, nil
}

func (s *iterationService) RecomputeMembers(ctx context.Context, iterationID string) (count int, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "recompute-members",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"iteration_id": iterationID, "member_count": count},
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txIterations := repository.NewSQLiteIterationRepo(tx)
		txMembers := repository.NewSQLiteMemberRepo(tx)

		it, err := txIterations.GetByID(ctx, iterationID)
		if err != nil {
			return err
		}
		members, err := txMembers.ListByIteration(ctx, iterationID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, m := range members {
			m.EffectiveCapacityDays = capacity.EffectiveCapacity(it.WorkingDays, m.Leaves, m.AvailabilityPercent)
			m.UpdatedAt = now
			if err := txMembers.Update(ctx, m); err != nil {
				return err
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("recomputing members: %w", err)
	}
	return count, nil
}

func (s *iterationService) ListWeeks(ctx context.Context, iterationID string) ([]*domain.Week, error) {
	return s.weeks.ListByIteration(ctx, iterationID)
}

func (s *iterationService) Delete(ctx context.Context, id string) error {
	return s.iterations.Delete(ctx, id)
}
