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

func newStakeholderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stakeholder",
		Short: "Manage the stakeholder directory",
	}

	cmd.AddCommand(
		newStakeholderAddCmd(app),
		newStakeholderListCmd(app),
	)

	return cmd
}

func newStakeholderAddCmd(app *App) *cobra.Command {
	var name, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a stakeholder",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := &domain.Stakeholder{
				ID:        uuid.New().String(),
				Name:      name,
				Role:      role,
				CreatedAt: time.Now().UTC(),
			}

			if err := app.Stakeholders.Create(context.Background(), s); err != nil {
				return err
			}

			fmt.Printf("Added stakeholder %s [%s]\n", s.Name, s.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "", "Role label")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newStakeholderListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stakeholders",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := app.Stakeholders.List(context.Background())
			if err != nil {
				return err
			}

			if len(all) == 0 {
				fmt.Println("No stakeholders found.")
				return nil
			}

			headers := []string{"ID", "NAME", "ROLE"}
			rows := make([][]string, 0, len(all))
			for _, s := range all {
				role := s.Role
				if role == "" {
					role = "--"
				}
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					formatter.Bold(s.Name),
					formatter.Dim(role),
				})
			}

			fmt.Printf("%s\n", formatter.RenderBox("Stakeholders", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}
