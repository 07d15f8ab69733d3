package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/alexanderramin/sprintcap/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeam(name string) *domain.Team {
	return &domain.Team{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

func newDefinition(teamID, stakeholderID string, pct float64, leaves int) *domain.TeamDefinition {
	return &domain.TeamDefinition{
		ID:                         uuid.New().String(),
		TeamID:                     teamID,
		StakeholderID:              stakeholderID,
		DefaultAvailabilityPercent: pct,
		DefaultLeaves:              leaves,
	}
}

func TestTeamRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	ctx := context.Background()

	team := newTeam("Platform")
	team.Description = "core platform squad"
	require.NoError(t, teams.Create(ctx, team))
	require.NoError(t, teams.CreateDefinition(ctx, newDefinition(team.ID, "alice", 80, 1)))
	require.NoError(t, teams.CreateDefinition(ctx, newDefinition(team.ID, "bob", 100, 0)))

	got, err := teams.GetByID(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, "Platform", got.Name)
	assert.Equal(t, "core platform squad", got.Description)

	defs, err := teams.ListDefinitions(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, defs, 2)

	n, err := teams.CountTeams(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestTeamRepo_GetByNameCaseInsensitive(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	ctx := context.Background()

	require.NoError(t, teams.Create(ctx, newTeam("Platform")))

	got, err := teams.GetByName(ctx, "platform")
	require.NoError(t, err)
	assert.Equal(t, "Platform", got.Name)

	_, err = teams.GetByName(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTeamRepo_DeleteCascadesDefinitions(t *testing.T) {
	database := testutil.NewTestDB(t)
	teams := NewSQLiteTeamRepo(database)
	ctx := context.Background()

	team := newTeam("Ephemeral")
	require.NoError(t, teams.Create(ctx, team))
	require.NoError(t, teams.CreateDefinition(ctx, newDefinition(team.ID, "alice", 100, 0)))

	require.NoError(t, teams.Delete(ctx, team.ID))

	defs, err := teams.ListDefinitions(ctx, team.ID)
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestStakeholderRepo_RoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStakeholderRepo(database)
	ctx := context.Background()

	sh := testutil.NewTestStakeholder("Alice Chen")
	require.NoError(t, repo.Create(ctx, sh))

	got, err := repo.GetByID(ctx, sh.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Chen", got.Name)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
