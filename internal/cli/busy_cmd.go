package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/semestra/internal/cli/formatter"
	"github.com/alexanderramin/semestra/internal/domain"
)

func newBusyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "busy",
		Short: "Manage fixed weekly commitments",
	}

	cmd.AddCommand(
		newBusyAddCmd(app),
		newBusyListCmd(app),
		newBusyRemoveCmd(app),
	)

	return cmd
}

var dayNames = map[string]int{
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
}

func parseDayArg(s string) (int, error) {
	if day, ok := dayNames[strings.ToLower(s)]; ok {
		return day, nil
	}
	return 0, fmt.Errorf("unknown day %q (use mon..sun)", s)
}

func newBusyAddCmd(app *App) *cobra.Command {
	var day, title, slotType string
	var start, end int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Block a weekly hour range",
		RunE: func(cmd *cobra.Command, args []string) error {
			dayIdx, err := parseDayArg(day)
			if err != nil {
				return err
			}
			slot := &domain.BusySlot{
				UserID:    domain.LocalUserID,
				DayOfWeek: dayIdx,
				StartHour: start,
				EndHour:   end,
				Title:     title,
				SlotType:  slotType,
			}
			if err := app.Slots.Add(context.Background(), slot); err != nil {
				return err
			}
			fmt.Printf("Blocked %s %s\n", formatter.DayName(dayIdx), formatter.HourRange(start, end))
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "Day of week (mon..sun)")
	cmd.Flags().IntVar(&start, "from", 0, "Start hour (0-23)")
	cmd.Flags().IntVar(&end, "to", 0, "End hour, exclusive (1-24)")
	cmd.Flags().StringVar(&title, "title", "", "What occupies this slot")
	cmd.Flags().StringVar(&slotType, "type", "class", "Slot type (class|work|sleep|other)")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newBusyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the weekly busy grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.Slots.List(context.Background(), domain.LocalUserID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatBusyTable(slots))
			return nil
		},
	}
}

func newBusyRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Remove a busy slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSlotID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Slots.Delete(ctx, domain.LocalUserID, id); err != nil {
				return err
			}
			fmt.Println("Busy slot removed")
			return nil
		},
	}
}
