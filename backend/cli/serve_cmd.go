package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"coursetracker/backend/routes"
	"coursetracker/backend/utils"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.Migrate(app.DB); err != nil {
				return err
			}

			server := routes.NewApp(app.Cfg, app.Log, app.Enrollment, app.Auth)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				app.Log.Info("server listening", "port", app.Cfg.ServerPort)
				errCh <- server.Listen(":" + app.Cfg.ServerPort)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			app.Log.Info("shutting down")
			return server.ShutdownWithTimeout(10 * time.Second)
		},
	}
}

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := utils.Migrate(app.DB); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema up to date.")
			return nil
		},
	}
}
