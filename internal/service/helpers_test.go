package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/sprintcap/internal/repository"
	"github.com/alexanderramin/sprintcap/internal/testutil"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// testEnv wires every service against one in-memory database.
type testEnv struct {
	db           *sql.DB
	iterations   IterationService
	members      MemberService
	teams        TeamService
	stakeholders StakeholderService
	analytics    AnalyticsService

	iterationRepo repository.IterationRepo
	memberRepo    repository.MemberRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)

	iterationRepo := repository.NewSQLiteIterationRepo(database)
	memberRepo := repository.NewSQLiteMemberRepo(database)
	weekRepo := repository.NewSQLiteWeekRepo(database)
	availRepo := repository.NewSQLiteAvailabilityRepo(database)
	teamRepo := repository.NewSQLiteTeamRepo(database)
	stakeholderRepo := repository.NewSQLiteStakeholderRepo(database)

	return &testEnv{
		db:            database,
		iterations:    NewIterationService(iterationRepo, weekRepo, uow),
		members:       NewMemberService(iterationRepo, memberRepo, weekRepo, availRepo),
		teams:         NewTeamService(teamRepo, iterationRepo, memberRepo, uow),
		stakeholders:  NewStakeholderService(stakeholderRepo),
		analytics:     NewAnalyticsService(iterationRepo, memberRepo, weekRepo, availRepo, teamRepo, stakeholderRepo),
		iterationRepo: iterationRepo,
		memberRepo:    memberRepo,
	}
}
