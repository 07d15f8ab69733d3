package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/sprintcap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekRepo_CreateAndListOrdered(t *testing.T) {
	database := testutil.NewTestDB(t)
	iterations := NewSQLiteIterationRepo(database)
	weeks := NewSQLiteWeekRepo(database)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 1")
	require.NoError(t, iterations.Create(ctx, it))

	// Insert out of order; listing sorts by index.
	w2 := testutil.NewTestWeek(it, 2)
	w1 := testutil.NewTestWeek(it, 1)
	require.NoError(t, weeks.Create(ctx, w2))
	require.NoError(t, weeks.Create(ctx, w1))

	got, err := weeks.ListByIteration(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].WeekIndex)
	assert.Equal(t, 2, got[1].WeekIndex)
	assert.True(t, got[0].WeekStart.Equal(w1.WeekStart))
	assert.True(t, got[0].WeekEnd.Equal(w1.WeekEnd))
}

func TestWeekRepo_DuplicateIndexRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	iterations := NewSQLiteIterationRepo(database)
	weeks := NewSQLiteWeekRepo(database)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 2")
	require.NoError(t, iterations.Create(ctx, it))
	require.NoError(t, weeks.Create(ctx, testutil.NewTestWeek(it, 1)))

	assert.Error(t, weeks.Create(ctx, testutil.NewTestWeek(it, 1)))
}

func TestWeekRepo_DeleteAboveIndex(t *testing.T) {
	database := testutil.NewTestDB(t)
	iterations := NewSQLiteIterationRepo(database)
	weeks := NewSQLiteWeekRepo(database)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 3")
	require.NoError(t, iterations.Create(ctx, it))
	for i := 1; i <= 4; i++ {
		require.NoError(t, weeks.Create(ctx, testutil.NewTestWeek(it, i)))
	}

	require.NoError(t, weeks.DeleteAboveIndex(ctx, it.ID, 2))

	got, err := weeks.ListByIteration(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[1].WeekIndex)
}

func TestAvailabilityRepo_RoundTripAndUnique(t *testing.T) {
	database := testutil.NewTestDB(t)
	iterations := NewSQLiteIterationRepo(database)
	weeks := NewSQLiteWeekRepo(database)
	avail := NewSQLiteAvailabilityRepo(database)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 4")
	require.NoError(t, iterations.Create(ctx, it))
	w := testutil.NewTestWeek(it, 1)
	require.NoError(t, weeks.Create(ctx, w))

	a := testutil.NewTestAvailability(w.ID, "alice", 80)
	require.NoError(t, avail.Create(ctx, a))

	got, err := avail.GetByWeekAndStakeholder(ctx, w.ID, "alice")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 80.0, got.AvailabilityPercent, 1e-9)
	assert.Equal(t, 4, got.DaysPresent)

	// One row per (week, stakeholder).
	assert.Error(t, avail.Create(ctx, testutil.NewTestAvailability(w.ID, "alice", 60)))

	none, err := avail.GetByWeekAndStakeholder(ctx, w.ID, "ghost")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestAvailabilityRepo_ListByIteration(t *testing.T) {
	database := testutil.NewTestDB(t)
	iterations := NewSQLiteIterationRepo(database)
	weeks := NewSQLiteWeekRepo(database)
	avail := NewSQLiteAvailabilityRepo(database)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 5")
	require.NoError(t, iterations.Create(ctx, it))
	w1 := testutil.NewTestWeek(it, 1)
	w2 := testutil.NewTestWeek(it, 2)
	require.NoError(t, weeks.Create(ctx, w1))
	require.NoError(t, weeks.Create(ctx, w2))

	require.NoError(t, avail.Create(ctx, testutil.NewTestAvailability(w2.ID, "alice", 60)))
	require.NoError(t, avail.Create(ctx, testutil.NewTestAvailability(w1.ID, "alice", 100)))

	got, err := avail.ListByIteration(ctx, it.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by week index via the join.
	assert.Equal(t, w1.ID, got[0].WeekID)
	assert.Equal(t, w2.ID, got[1].WeekID)
}

func TestAvailabilityRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	iterations := NewSQLiteIterationRepo(database)
	weeks := NewSQLiteWeekRepo(database)
	avail := NewSQLiteAvailabilityRepo(database)
	ctx := context.Background()

	it := testutil.NewTestIteration("Sprint 6")
	require.NoError(t, iterations.Create(ctx, it))
	w := testutil.NewTestWeek(it, 1)
	require.NoError(t, weeks.Create(ctx, w))

	a := testutil.NewTestAvailability(w.ID, "bob", 100)
	require.NoError(t, avail.Create(ctx, a))

	a.AvailabilityPercent = 40
	a.DaysPresent = 2
	require.NoError(t, avail.Update(ctx, a))

	got, err := avail.GetByWeekAndStakeholder(ctx, w.ID, "bob")
	require.NoError(t, err)
	assert.InDelta(t, 40.0, got.AvailabilityPercent, 1e-9)
	assert.Equal(t, 2, got.DaysPresent)
}
