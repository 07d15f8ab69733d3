package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexanderramin/sprintcap/internal/cli"
	"github.com/alexanderramin/sprintcap/internal/db"
	"github.com/alexanderramin/sprintcap/internal/repository"
	"github.com/alexanderramin/sprintcap/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.sprintcap/sprintcap.db
	dbPath := os.Getenv("SPRINTCAP_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".sprintcap", "sprintcap.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	iterationRepo := repository.NewSQLiteIterationRepo(database)
	memberRepo := repository.NewSQLiteMemberRepo(database)
	weekRepo := repository.NewSQLiteWeekRepo(database)
	availRepo := repository.NewSQLiteAvailabilityRepo(database)
	teamRepo := repository.NewSQLiteTeamRepo(database)
	stakeholderRepo := repository.NewSQLiteStakeholderRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Use-case telemetry goes to stderr when it is captured (piped, redirected)
	// or when explicitly requested; an interactive terminal stays quiet.
	var logSink io.Writer
	if os.Getenv("SPRINTCAP_LOG") == "1" || !isatty.IsTerminal(os.Stderr.Fd()) {
		logSink = os.Stderr
	}
	observer := service.NewLogUseCaseObserver(logSink)

	app := &cli.App{
		Iterations:   service.NewIterationService(iterationRepo, weekRepo, uow, observer),
		Members:      service.NewMemberService(iterationRepo, memberRepo, weekRepo, availRepo),
		Teams:        service.NewTeamService(teamRepo, iterationRepo, memberRepo, uow, observer),
		Stakeholders: service.NewStakeholderService(stakeholderRepo),
		Analytics:    service.NewAnalyticsService(iterationRepo, memberRepo, weekRepo, availRepo, teamRepo, stakeholderRepo),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
