package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/semestra/internal/cli/formatter"
	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/tui"
)

func newPlanCmd(app *App) *cobra.Command {
	var week bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Schedule all pending tasks and show the plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			result, err := app.Schedule.Run(ctx, domain.LocalUserID)
			if err != nil {
				return err
			}

			tasks, err := app.Tasks.List(ctx, domain.LocalUserID)
			if err != nil {
				return err
			}
			byID := make(map[string]*domain.Task, len(tasks))
			for _, t := range tasks {
				byID[t.ID] = t
			}

			if week {
				if !app.Interactive {
					return fmt.Errorf("--week requires a terminal")
				}
				slots, err := app.Slots.List(ctx, domain.LocalUserID)
				if err != nil {
					return err
				}
				return runWeekView(tasks, slots)
			}

			fmt.Print(formatter.FormatPlan(result, byID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&week, "week", false, "Browse the plan in a week calendar")
	return cmd
}

func runWeekView(tasks []*domain.Task, slots []*domain.BusySlot) error {
	model := tui.NewWeekModel(tasks, slots, time.Now())
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
