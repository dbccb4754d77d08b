package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/semestra/internal/cli/formatter"
	"github.com/alexanderramin/semestra/internal/domain"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a semester timetable from a JSON file",
		Long: `Import courses, weekly busy slots, and seed tasks from a JSON file.
The whole file is validated first; nothing is written if any entry is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Importer.ImportTimetable(context.Background(), domain.LocalUserID, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s Imported %d courses, %d busy slots, %d tasks\n",
				formatter.StyleGreen.Render("✓"),
				result.CourseCount, result.SlotCount, result.TaskCount)
			return nil
		},
	}
}
