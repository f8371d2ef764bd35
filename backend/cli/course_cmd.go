package cli

import (
	"fmt"
	"strings"

	"coursetracker/backend/models"
	"coursetracker/backend/services"

	"github.com/spf13/cobra"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage the course catalog",
	}
	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseTopicCmd(app),
		newCourseListCmd(app),
	)
	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := app.Enrollment.CreateCourse(cmd.Context(), services.SystemSession(), title)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created course %q (%s)\n", course.Title, course.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "course title")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newCourseTopicCmd(app *App) *cobra.Command {
	var courseID, title, level string
	cmd := &cobra.Command{
		Use:   "topic",
		Short: "Append a topic to a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			course, err := app.Enrollment.AddTopic(
				cmd.Context(),
				services.SystemSession(),
				courseID,
				title,
				models.TopicLevel(level),
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d topics: %s\n", course.Title, len(course.Topics), strings.Join(course.TopicTitles(), ", "))
			return nil
		},
	}
	cmd.Flags().StringVar(&courseID, "course-id", "", "course to extend")
	cmd.Flags().StringVar(&title, "title", "", "topic title")
	cmd.Flags().StringVar(&level, "level", string(models.LevelBasic), "Basic, Intermediate or Advanced")
	_ = cmd.MarkFlagRequired("course-id")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Enrollment.ListCourses(cmd.Context())
			if err != nil {
				return err
			}
			if len(courses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No courses found.")
				return nil
			}
			for _, c := range courses {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %-30s topics=%d enrolled=%d\n", c.ID, c.Title, len(c.Topics), c.EnrolledCount)
			}
			return nil
		},
	}
}
