package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprintcap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Capacity analytics",
	}

	cmd.AddCommand(
		newReportIterationCmd(app),
		newReportDashboardCmd(app),
	)

	return cmd
}

func newReportIterationCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "iteration ITERATION",
		Short: "Show one iteration's capacity report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}

			report, err := app.Analytics.IterationReport(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatIterationReport(report))
			return nil
		},
	}
}

func newReportDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the cross-iteration dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := app.Analytics.Dashboard(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatDashboard(dash))
			return nil
		},
	}
}
