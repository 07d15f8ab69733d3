package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberService_UpsertInsertsThenUpdates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 1")
	require.NoError(t, env.iterations.Create(ctx, it))

	m, err := env.members.Upsert(ctx, it.ID, "alice", 2, 50)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, m.EffectiveCapacityDays, 1e-9) // (10-2)*0.5

	// Second upsert for the same stakeholder updates in place.
	m2, err := env.members.Upsert(ctx, it.ID, "alice", 0, 100)
	require.NoError(t, err)
	assert.Equal(t, m.ID, m2.ID)
	assert.InDelta(t, 10.0, m2.EffectiveCapacityDays, 1e-9)

	all, err := env.members.ListByIteration(ctx, it.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMemberService_UpsertLeavesExceedingWorkingDays(t *testing.T) {
	// Not an error: surfaces as negative capacity for analytics to flag.
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 2")
	require.NoError(t, env.iterations.Create(ctx, it))

	m, err := env.members.Upsert(ctx, it.ID, "bob", 12, 100)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, m.EffectiveCapacityDays, 1e-9)
}

func TestMemberService_UpsertRejectsMalformedInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 3")
	require.NoError(t, env.iterations.Create(ctx, it))

	_, err := env.members.Upsert(ctx, it.ID, "bob", -1, 100)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = env.members.Upsert(ctx, it.ID, "bob", 0, 120)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = env.members.Upsert(ctx, it.ID, "bob", 0, -10)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMemberService_SetWeeklyAvailability(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 4")
	require.NoError(t, env.iterations.Create(ctx, it))
	_, err := env.iterations.GenerateWeeks(ctx, it.ID)
	require.NoError(t, err)

	a, err := env.members.SetWeeklyAvailability(ctx, it.ID, 1, "alice", 80)
	require.NoError(t, err)
	assert.Equal(t, 4, a.DaysPresent)
	assert.Equal(t, domain.DefaultWeekDaysTotal, a.DaysTotal)

	// Overwrite re-derives days present with the percentage in one write.
	a2, err := env.members.SetWeeklyAvailability(ctx, it.ID, 1, "alice", 40)
	require.NoError(t, err)
	assert.Equal(t, a.ID, a2.ID)
	assert.Equal(t, 2, a2.DaysPresent)
}

func TestMemberService_SetWeeklyAvailabilityErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 5")
	require.NoError(t, env.iterations.Create(ctx, it))

	_, err := env.members.SetWeeklyAvailability(ctx, it.ID, 0, "alice", 80)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	// Weeks not generated yet.
	_, err = env.members.SetWeeklyAvailability(ctx, it.ID, 1, "alice", 80)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
