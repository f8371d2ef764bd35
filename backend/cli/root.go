package cli

import (
	"coursetracker/backend/config"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// App holds what the commands need. It is wired once in main.
type App struct {
	Cfg        *config.Config
	Log        *utils.Logger
	DB         *gorm.DB
	Enrollment *services.EnrollmentService
	Auth       *services.AuthService
}

// NewRootCmd creates the top-level command and registers all subcommands
// against app.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "coursetracker",
		Short:         "Course progress tracker server and admin tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newMigrateCmd(app),
		newAdminCmd(app),
		newCourseCmd(app),
		newStudentCmd(app),
	)

	return root
}
