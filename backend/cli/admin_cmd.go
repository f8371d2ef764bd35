package cli

import (
	"fmt"

	"coursetracker/backend/services"

	"github.com/spf13/cobra"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage administrators",
	}
	cmd.AddCommand(newAdminPromoteCmd(app))
	return cmd
}

func newAdminPromoteCmd(app *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "promote",
		Short: "Grant the admin role to a registered student",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Auth.PromoteAdmin(cmd.Context(), services.SystemSession(), email)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s) is now an admin.\n", st.FullName, st.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the student to promote")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
