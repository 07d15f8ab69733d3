package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsService_IterationReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := testutil.NewTestStakeholder("Alice Chen")
	require.NoError(t, env.stakeholders.Create(ctx, alice))
	bob := testutil.NewTestStakeholder("Bob Osei")
	require.NoError(t, env.stakeholders.Create(ctx, bob))

	it := testutil.NewTestIteration("Sprint 1") // 10 working days, 20 committed
	require.NoError(t, env.iterations.Create(ctx, it))

	_, err := env.members.Upsert(ctx, it.ID, alice.ID, 0, 100)
	require.NoError(t, err)
	_, err = env.members.Upsert(ctx, it.ID, bob.ID, 2, 50)
	require.NoError(t, err)

	_, err = env.iterations.GenerateWeeks(ctx, it.ID)
	require.NoError(t, err)
	_, err = env.members.SetWeeklyAvailability(ctx, it.ID, 1, alice.ID, 80)
	require.NoError(t, err)

	report, err := env.analytics.IterationReport(ctx, it.ID)
	require.NoError(t, err)

	// 10 + 4 = 14 effective days against 20 committed points.
	assert.InDelta(t, 14.0, report.Variance.TotalCapacity, 1e-9)
	assert.InDelta(t, -6.0, report.Variance.Amount, 1e-9)
	assert.Equal(t, domain.VarianceUnder, report.Variance.Label)

	require.Len(t, report.Members, 2)
	byName := make(map[string]MemberReport)
	for _, m := range report.Members {
		byName[m.StakeholderName] = m
	}
	require.Contains(t, byName, "Alice Chen")
	require.Contains(t, byName, "Bob Osei")
	assert.InDelta(t, 0.8, byName["Alice Chen"].AttendanceRate, 1e-9)
	assert.InDelta(t, 80.0, byName["Alice Chen"].Rollup.AvgAvailabilityPercent, 1e-9)
	assert.Equal(t, 1, byName["Alice Chen"].Rollup.WeeksTracked)
	// Bob has no tracked weeks: rate is 0, not an error.
	assert.Zero(t, byName["Bob Osei"].AttendanceRate)

	require.Len(t, report.Trend, 2)
	assert.Equal(t, 1, report.Trend[0].WeekIndex)
	assert.InDelta(t, 80.0, report.Trend[0].AvgAvailability, 1e-9)
	assert.Equal(t, 1, report.Trend[0].MemberCount)
	// Untracked trailing week reads as fully available.
	assert.InDelta(t, 100.0, report.Trend[1].AvgAvailability, 1e-9)
	assert.Equal(t, 0, report.Trend[1].MemberCount)
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tracked := testutil.NewTestIteration("Tracked")
	require.NoError(t, env.iterations.Create(ctx, tracked))
	_, err := env.members.Upsert(ctx, tracked.ID, "alice", 0, 100)
	require.NoError(t, err)
	_, err = env.members.Upsert(ctx, tracked.ID, "bob", 2, 50)
	require.NoError(t, err)
	_, err = env.iterations.GenerateWeeks(ctx, tracked.ID)
	require.NoError(t, err)
	_, err = env.members.SetWeeklyAvailability(ctx, tracked.ID, 1, "alice", 80)
	require.NoError(t, err)

	// Planned but unpopulated: members exist, no availability yet.
	planned := testutil.NewTestIteration("Planned", testutil.WithCommittedPoints(5))
	require.NoError(t, env.iterations.Create(ctx, planned))
	_, err = env.members.Upsert(ctx, planned.ID, "carol", 0, 100)
	require.NoError(t, err)

	_, err = env.teams.SaveTeamFromIteration(ctx, tracked.ID, "Platform", "")
	require.NoError(t, err)

	dash, err := env.analytics.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, dash.Summary.TotalMembers)
	assert.Equal(t, 1, dash.Summary.TotalTeams)
	assert.Equal(t, 1, dash.Summary.ActiveIterations)
	// Only alice has tracked weeks, so her 80% is the whole average.
	assert.InDelta(t, 80.0, dash.Summary.AvgCapacityPercent, 1e-9)

	require.Len(t, dash.Rows, 2)
	byName := make(map[string]DashboardRow)
	for _, r := range dash.Rows {
		byName[r.Iteration.Name] = r
	}
	assert.True(t, byName["Tracked"].Active)
	assert.Equal(t, domain.VarianceUnder, byName["Tracked"].VarianceLabel)
	assert.InDelta(t, 14.0, byName["Tracked"].TotalCapacity, 1e-9)

	assert.False(t, byName["Planned"].Active)
	assert.Equal(t, 1, byName["Planned"].MemberCount)
	assert.Equal(t, domain.VarianceOver, byName["Planned"].VarianceLabel) // 10 days vs 5 points
}
