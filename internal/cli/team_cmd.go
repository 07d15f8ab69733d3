package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprintcap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTeamCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage reusable team templates",
	}

	cmd.AddCommand(
		newTeamSaveCmd(app),
		newTeamApplyCmd(app),
		newTeamListCmd(app),
		newTeamInspectCmd(app),
		newTeamRemoveCmd(app),
	)

	return cmd
}

func newTeamSaveCmd(app *App) *cobra.Command {
	var name, desc string

	cmd := &cobra.Command{
		Use:   "save ITERATION",
		Short: "Snapshot an iteration's members as a named team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			iterationID, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}

			team, err := app.Teams.SaveTeamFromIteration(ctx, iterationID, name, desc)
			if err != nil {
				return err
			}

			defs, err := app.Teams.ListDefinitions(ctx, team.ID)
			if err != nil {
				return err
			}

			fmt.Printf("Saved team %q with %d members\n", team.Name, len(defs))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Team name")
	cmd.Flags().StringVar(&desc, "desc", "", "Team description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTeamApplyCmd(app *App) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "apply TEAM",
		Short: "Apply a team's defaults onto an iteration",
		Long: "Apply a team's member defaults onto a target iteration. Effective\n" +
			"capacities are computed against the target's working days, not the\n" +
			"iteration the team was captured from.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			iterationID, err := resolveIterationID(ctx, app, target)
			if err != nil {
				return err
			}

			created, err := app.Teams.ApplyTeamToIteration(ctx, teamID, iterationID)
			if err != nil {
				return err
			}

			var total float64
			for _, m := range created {
				total += m.EffectiveCapacityDays
			}
			fmt.Printf("Applied %d members (%.2f effective days total)\n", len(created), total)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "to", "", "Target iteration name or ID")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newTeamListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved teams",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := app.Teams.List(context.Background())
			if err != nil {
				return err
			}

			if len(teams) == 0 {
				fmt.Println("No teams found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatTeamList(teams))
			return nil
		},
	}
}

func newTeamInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect TEAM",
		Short: "Show a team's member defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			team, err := app.Teams.GetByID(ctx, teamID)
			if err != nil {
				return err
			}
			defs, err := app.Teams.ListDefinitions(ctx, teamID)
			if err != nil {
				return err
			}
			names, err := stakeholderNames(ctx, app)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatTeamInspect(team, defs, names))
			return nil
		},
	}
}

func newTeamRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove TEAM",
		Short: "Remove a saved team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			teamID, err := resolveTeamID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Teams.Delete(ctx, teamID); err != nil {
				return err
			}
			fmt.Printf("Removed team %s\n", teamID)
			return nil
		},
	}
}
