package cli

import (
	"fmt"
	"strings"

	"coursetracker/backend/services"

	"github.com/spf13/cobra"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Inspect students",
	}
	cmd.AddCommand(newStudentShowCmd(app))
	return cmd
}

func newStudentShowCmd(app *App) *cobra.Command {
	var registerNo string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a student's progress by register number",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.Enrollment.FindStudentByRegisterNo(cmd.Context(), services.SystemSession(), registerNo)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s  %s\n", st.RegisterNo, st.FullName, st.Email)
			if len(st.Ongoing) == 0 {
				fmt.Fprintln(out, "  No ongoing courses.")
			}
			for _, e := range st.Ongoing {
				fmt.Fprintf(out, "  %-30s %-25s %3d%%\n", e.Title, e.CurrentTopic, e.ProgressLevel)
			}
			if len(st.Completed) > 0 {
				fmt.Fprintf(out, "  Completed: %s\n", strings.Join(st.Completed, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&registerNo, "register-no", "", "student register number")
	_ = cmd.MarkFlagRequired("register-no")
	return cmd
}
