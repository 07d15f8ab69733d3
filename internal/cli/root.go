package cli

import (
	"strings"

	"github.com/alexanderramin/sprintcap/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Iterations   service.IterationService
	Members      service.MemberService
	Teams        service.TeamService
	Stakeholders service.StakeholderService
	Analytics    service.AnalyticsService
}

// NewRootCmd creates the top-level "sprintcap" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "sprintcap",
		Short: "Sprint capacity planner and analytics",
	}

	// Accept underscore spellings of flags (--committed_points) alongside the
	// canonical dashed form.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(
		newIterationCmd(app),
		newMemberCmd(app),
		newAvailCmd(app),
		newTeamCmd(app),
		newStakeholderCmd(app),
		newReportCmd(app),
	)

	return root
}
