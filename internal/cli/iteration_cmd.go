package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintcap/internal/cli/formatter"
	"github.com/alexanderramin/sprintcap/internal/domain"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newIterationCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iteration",
		Short: "Manage iterations",
	}

	cmd.AddCommand(
		newIterationAddCmd(app),
		newIterationListCmd(app),
		newIterationInspectCmd(app),
		newIterationUpdateCmd(app),
		newIterationWeeksCmd(app),
		newIterationRecomputeCmd(app),
		newIterationRemoveCmd(app),
	)

	return cmd
}

func newIterationAddCmd(app *App) *cobra.Command {
	var name, projectID, start, end string
	var points float64
	var weeks int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new iteration",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := time.Parse("2006-01-02", end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			it := &domain.Iteration{
				ID:              uuid.New().String(),
				ProjectID:       projectID,
				Name:            name,
				StartDate:       startDate,
				EndDate:         endDate,
				CommittedPoints: points,
				CreatedAt:       time.Now().UTC(),
				UpdatedAt:       time.Now().UTC(),
			}
			if cmd.Flags().Changed("weeks") {
				it.WeeksCount = &weeks
			}

			if err := app.Iterations.Create(context.Background(), it); err != nil {
				return err
			}

			fmt.Printf("Created iteration %s [%s] with %d working days\n", it.Name, it.DisplayID(), it.WorkingDays)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Iteration name")
	cmd.Flags().StringVar(&projectID, "project", "", "Owning project ID")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&points, "points", 0, "Committed story points")
	cmd.Flags().IntVar(&weeks, "weeks", 0, "Declared week count (overrides the derived count)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newIterationListCmd(app *App) *cobra.Command {
	var projectID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List iterations",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var iterations []*domain.Iteration
			var err error
			if projectID != "" {
				iterations, err = app.Iterations.ListByProject(ctx, projectID)
			} else {
				iterations, err = app.Iterations.List(ctx)
			}
			if err != nil {
				return err
			}

			if len(iterations) == 0 {
				fmt.Println("No iterations found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatIterationList(iterations))
			return nil
		},
	}

	cmd.Flags().StringVar(&projectID, "project", "", "Filter by owning project ID")

	return cmd
}

func newIterationInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect ITERATION",
		Short: "Show iteration details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Iterations.GetByID(ctx, id)
			if err != nil {
				return err
			}
			members, err := app.Members.ListByIteration(ctx, id)
			if err != nil {
				return err
			}
			names, err := stakeholderNames(ctx, app)
			if err != nil {
				return err
			}
			weeks, err := app.Iterations.ListWeeks(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatIterationInspect(it, members, weeks, names))
			return nil
		},
	}
}

func newIterationUpdateCmd(app *App) *cobra.Command {
	var name, start, end string
	var points float64
	var weeks int

	cmd := &cobra.Command{
		Use:   "update ITERATION",
		Short: "Update an iteration",
		Long: "Update an iteration's name, dates, committed points or week count.\n" +
			"Editing the dates re-derives working days but leaves existing member\n" +
			"capacities untouched; run \"iteration recompute\" to refresh them.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			it, err := app.Iterations.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				it.Name = name
			}
			if cmd.Flags().Changed("start") {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				it.StartDate = startDate
			}
			if cmd.Flags().Changed("end") {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				it.EndDate = endDate
			}
			if cmd.Flags().Changed("points") {
				it.CommittedPoints = points
			}
			if cmd.Flags().Changed("weeks") {
				it.WeeksCount = &weeks
			}
			it.UpdatedAt = time.Now().UTC()

			if err := app.Iterations.Update(ctx, it); err != nil {
				return err
			}

			fmt.Printf("Updated iteration %s: %d working days\n", it.Name, it.WorkingDays)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Iteration name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&points, "points", 0, "Committed story points")
	cmd.Flags().IntVar(&weeks, "weeks", 0, "Declared week count")

	return cmd
}

func newIterationWeeksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "weeks ITERATION",
		Short: "Generate or refresh the iteration's week sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			weeks, err := app.Iterations.GenerateWeeks(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("Generated %d weeks:\n", len(weeks))
			for _, w := range weeks {
				fmt.Printf("  W%d  %s – %s\n", w.WeekIndex,
					w.WeekStart.Format("2006-01-02"), w.WeekEnd.Format("2006-01-02"))
			}
			return nil
		},
	}
}

func newIterationRecomputeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "recompute ITERATION",
		Short: "Recompute member capacities from current working days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			n, err := app.Iterations.RecomputeMembers(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("Recomputed %d members\n", n)
			return nil
		},
	}
}

func newIterationRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ITERATION",
		Short: "Remove an iteration and its capacity data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveIterationID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Iterations.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Removed iteration %s\n", id)
			return nil
		},
	}
}
