package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sprintcap/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newMemberCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage iteration members",
	}

	cmd.AddCommand(
		newMemberSetCmd(app),
		newMemberListCmd(app),
		newMemberRemoveCmd(app),
	)

	return cmd
}

func newMemberSetCmd(app *App) *cobra.Command {
	var who string
	var leaves int
	var avail float64

	cmd := &cobra.Command{
		Use:   "set ITERATION",
		Short: "Set a member's leaves and availability for an iteration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			iterationID, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stakeholderID, err := resolveStakeholderID(ctx, app, who)
			if err != nil {
				return err
			}

			m, err := app.Members.Upsert(ctx, iterationID, stakeholderID, leaves, avail)
			if err != nil {
				return err
			}

			fmt.Printf("Set %s: %d leaves, %.0f%% available, %.2f effective days\n",
				who, m.Leaves, m.AvailabilityPercent, m.EffectiveCapacityDays)
			return nil
		},
	}

	cmd.Flags().StringVar(&who, "who", "", "Stakeholder name or ID")
	cmd.Flags().IntVar(&leaves, "leaves", 0, "Planned leave days")
	cmd.Flags().Float64Var(&avail, "avail", 100, "Availability percent (0-100)")
	_ = cmd.MarkFlagRequired("who")

	return cmd
}

func newMemberListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list ITERATION",
		Short: "List an iteration's members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			iterationID, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			members, err := app.Members.ListByIteration(ctx, iterationID)
			if err != nil {
				return err
			}

			if len(members) == 0 {
				fmt.Println("No members found.")
				return nil
			}

			names, err := stakeholderNames(ctx, app)
			if err != nil {
				return err
			}

			it, err := app.Iterations.GetByID(ctx, iterationID)
			if err != nil {
				return err
			}
			weeks, err := app.Iterations.ListWeeks(ctx, iterationID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatIterationInspect(it, members, weeks, names))
			return nil
		},
	}
}

func newMemberRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove MEMBER_ID",
		Short: "Remove a member row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Members.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed member %s\n", args[0])
			return nil
		},
	}
}

func newAvailCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "avail",
		Short: "Track weekly availability",
	}

	cmd.AddCommand(newAvailSetCmd(app))

	return cmd
}

func newAvailSetCmd(app *App) *cobra.Command {
	var who string
	var week int
	var pct float64

	cmd := &cobra.Command{
		Use:   "set ITERATION",
		Short: "Record a member's availability for one week",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			iterationID, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stakeholderID, err := resolveStakeholderID(ctx, app, who)
			if err != nil {
				return err
			}

			a, err := app.Members.SetWeeklyAvailability(ctx, iterationID, week, stakeholderID, pct)
			if err != nil {
				return err
			}

			fmt.Printf("Week %d: %s at %.0f%% (%d/%d days)\n", week, who, a.AvailabilityPercent, a.DaysPresent, a.DaysTotal)
			return nil
		},
	}

	cmd.Flags().StringVar(&who, "who", "", "Stakeholder name or ID")
	cmd.Flags().IntVar(&week, "week", 1, "Week index (1-based)")
	cmd.Flags().Float64Var(&pct, "pct", 100, "Availability percent (0-100)")
	_ = cmd.MarkFlagRequired("who")
	_ = cmd.MarkFlagRequired("week")

	return cmd
}
