package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/semestra/internal/cli/formatter"
	"github.com/alexanderramin/semestra/internal/domain"
)

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}

	cmd.AddCommand(
		newCourseAddCmd(app),
		newCourseListCmd(app),
		newCourseRemoveCmd(app),
	)

	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var name, code, color, term string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a course",
		RunE: func(cmd *cobra.Command, args []string) error {
			course := &domain.Course{
				UserID: domain.LocalUserID,
				Name:   name,
				Code:   code,
				Color:  color,
				Term:   term,
			}
			if err := app.Courses.Create(context.Background(), course); err != nil {
				return err
			}
			fmt.Printf("Created course %s\n", formatter.Bold(course.Name))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Course name")
	cmd.Flags().StringVar(&code, "code", "", "Course code (e.g. CS301)")
	cmd.Flags().StringVar(&color, "color", "", "Display color (hex)")
	cmd.Flags().StringVar(&term, "term", "", "Term label (e.g. 2026S)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCourseListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			courses, err := app.Courses.List(context.Background(), domain.LocalUserID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatCourseTable(courses))
			return nil
		},
	}
}

func newCourseRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm COURSE",
		Short: "Delete a course (tasks keep their data, lose the link)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			course, err := resolveCourse(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Courses.Delete(ctx, domain.LocalUserID, course.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted course %s\n", course.Name)
			return nil
		},
	}
}
