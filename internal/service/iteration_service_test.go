package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterationService_CreateDerivesWorkingDays(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 1")
	it.WorkingDays = 99 // stale caller value must be overwritten
	require.NoError(t, env.iterations.Create(ctx, it))

	got, err := env.iterations.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.WorkingDays)
}

func TestIterationService_CreateRejectsInvalid(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	nameless := testutil.NewTestIteration("Sprint 2")
	nameless.Name = ""
	assert.ErrorIs(t, env.iterations.Create(ctx, nameless), domain.ErrValidation)

	negative := testutil.NewTestIteration("Sprint 2")
	negative.CommittedPoints = -5
	assert.ErrorIs(t, env.iterations.Create(ctx, negative), domain.ErrValidation)
}

func TestIterationService_DateEditLeavesMembersStaleUntilRecompute(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 3")
	require.NoError(t, env.iterations.Create(ctx, it))

	m, err := env.members.Upsert(ctx, it.ID, "alice", 1, 80)
	require.NoError(t, err)
	assert.InDelta(t, 7.2, m.EffectiveCapacityDays, 1e-9) // (10-1)*0.8

	// Extend the iteration by a week: 10 -> 15 working days.
	it.EndDate = it.EndDate.AddDate(0, 0, 7)
	require.NoError(t, env.iterations.Update(ctx, it))

	updated, err := env.iterations.GetByID(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 15, updated.WorkingDays)

	// No cascading recomputation: the stored member still carries the old
	// effective capacity.
	stale, err := env.memberRepo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.InDelta(t, 7.2, stale.EffectiveCapacityDays, 1e-9)

	count, err := env.iterations.RecomputeMembers(ctx, it.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	fresh, err := env.memberRepo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.InDelta(t, 11.2, fresh.EffectiveCapacityDays, 1e-9) // (15-1)*0.8
}

func TestIterationService_GenerateWeeks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 4") // 12 calendar days -> 2 weeks
	require.NoError(t, env.iterations.Create(ctx, it))

	weeks, err := env.iterations.GenerateWeeks(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
	assert.Equal(t, 1, weeks[0].WeekIndex)
	assert.True(t, weeks[0].WeekStart.Equal(it.StartDate))
	assert.Equal(t, domain.DefaultWeekDaysTotal, weeks[0].DaysTotal)
}

func TestIterationService_GenerateWeeksIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 5")
	require.NoError(t, env.iterations.Create(ctx, it))

	first, err := env.iterations.GenerateWeeks(ctx, it.ID)
	require.NoError(t, err)
	second, err := env.iterations.GenerateWeeks(ctx, it.ID)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "regeneration must preserve week ids")
		assert.True(t, first[i].WeekStart.Equal(second[i].WeekStart))
	}
}

func TestIterationService_GenerateWeeksShrinksTrailingWeeks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	four := 4
	it := testutil.NewTestIteration("Sprint 6", testutil.WithWeeksCount(four))
	require.NoError(t, env.iterations.Create(ctx, it))

	weeks, err := env.iterations.GenerateWeeks(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, weeks, 4)

	// Declare fewer weeks and regenerate.
	two := 2
	it.WeeksCount = &two
	it.UpdatedAt = time.Now().UTC()
	require.NoError(t, env.iterations.Update(ctx, it))

	weeks, err = env.iterations.GenerateWeeks(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, weeks, 2)
}

func TestIterationService_GenerateWeeksMissingIteration(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.iterations.GenerateWeeks(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
