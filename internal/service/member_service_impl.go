package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintcap/internal/capacity"
	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/repository"
	"github.com/google/uuid"
)

type memberService struct {
	iterations   repository.IterationRepo
	members      repository.MemberRepo
	weeks        repository.WeekRepo
	availability repository.AvailabilityRepo
}

// NewMemberService creates the per-member capacity service.
func NewMemberService(
	iterations repository.IterationRepo,
	members repository.MemberRepo,
	weeks repository.WeekRepo,
	availability repository.AvailabilityRepo,
) MemberService {
	return &memberService{
		iterations:   iterations,
		members:      members,
		weeks:        weeks,
		availability: availability,
	}
}

// validatePercent rejects form-level nonsense at the boundary. The capacity
// formula itself stays permissive; leaves exceeding working days pass through
// and surface as negative capacity downstream.
func validatePercent(pct float64) error {
	if pct < 0 || pct > 100 {
		return fmt.Errorf("%w: availability percent %.2f outside [0, 100]", domain.ErrInvalidArgument, pct)
	}
	return nil
}

func (s *memberService) Upsert(ctx context.Context, iterationID, stakeholderID string, leaves int, availabilityPercent float64) (*domain.CapacityMember, error) {
	if leaves < 0 {
		return nil, fmt.Errorf("%w: leaves must be >= 0", domain.ErrInvalidArgument)
	}
	if err := validatePercent(availabilityPercent); err != nil {
		return nil, err
	}

	it, err := s.iterations.GetByID(ctx, iterationID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	effective := capacity.EffectiveCapacity(it.WorkingDays, leaves, availabilityPercent)

	existing, err := s.members.FindByIterationAndStakeholder(ctx, iterationID, stakeholderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.Leaves = leaves
		existing.AvailabilityPercent = availabilityPercent
		existing.EffectiveCapacityDays = effective
		existing.UpdatedAt = now
		if err := s.members.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	m := &domain.CapacityMember{
		ID:                    uuid.New().String(),
		IterationID:           iterationID,
		StakeholderID:         stakeholderID,
		Leaves:                leaves,
		AvailabilityPercent:   availabilityPercent,
		EffectiveCapacityDays: effective,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *memberService) ListByIteration(ctx context.Context, iterationID string) ([]*domain.CapacityMember, error) {
	return s.members.ListByIteration(ctx, iterationID)
}

func (s *memberService) SetWeeklyAvailability(ctx context.Context, iterationID string, weekIndex int, stakeholderID string, availabilityPercent float64) (*domain.WeeklyAvailability, error) {
	if weekIndex < 1 {
		return nil, fmt.Errorf("%w: week index %d must be >= 1", domain.ErrInvalidArgument, weekIndex)
	}
	if err := validatePercent(availabilityPercent); err != nil {
		return nil, err
	}

	weeks, err := s.weeks.ListByIteration(ctx, iterationID)
	if err != nil {
		return nil, err
	}
	var week *domain.Week
	for _, w := range weeks {
		if w.WeekIndex == weekIndex {
			week = w
			break
		}
	}
	if week == nil {
		return nil, fmt.Errorf("week %d of iteration %s: %w (generate weeks first)", weekIndex, iterationID, domain.ErrNotFound)
	}

	now := time.Now().UTC()
	daysPresent := capacity.DaysPresent(availabilityPercent, week.DaysTotal)

	existing, err := s.availability.GetByWeekAndStakeholder(ctx, week.ID, stakeholderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.AvailabilityPercent = availabilityPercent
		existing.DaysPresent = daysPresent
		existing.DaysTotal = week.DaysTotal
		existing.UpdatedAt = now
		if err := s.availability.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	a := &domain.WeeklyAvailability{
		ID:                  uuid.New().String(),
		WeekID:              week.ID,
		StakeholderID:       stakeholderID,
		AvailabilityPercent: availabilityPercent,
		DaysPresent:         daysPresent,
		DaysTotal:           week.DaysTotal,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := s.availability.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	return s.members.Delete(ctx, id)
}
