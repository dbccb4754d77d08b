package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/semestra/internal/repository"
	"github.com/alexanderramin/semestra/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks    service.TaskService
	Slots    service.BusySlotService
	Profiles service.ProfileService
	Courses  service.CourseService
	Schedule service.ScheduleService
	Importer service.ImportService
	Users    repository.UserRepo

	// Server settings, used only by "serve".
	HTTPAddr  string
	JWTSecret string
	TokenTTL  time.Duration

	// Interactive reports whether stdout is a TTY; forms and the week
	// view require one.
	Interactive bool
}

// NewRootCmd creates the top-level "semestra" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "semestra",
		Short: "Personal academic planner with automatic study scheduling",
	}

	root.AddCommand(
		newTaskCmd(app),
		newBusyCmd(app),
		newCourseCmd(app),
		newProfileCmd(app),
		newPlanCmd(app),
		newImportCmd(app),
		newServeCmd(app),
	)

	return root
}
