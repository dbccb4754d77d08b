package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/semestra/internal/cli/formatter"
	"github.com/alexanderramin/semestra/internal/domain"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskDropCmd(app),
		newTaskRemoveCmd(app),
	)

	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var title, deadline, category, priority, course, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if title == "" || deadline == "" {
				if !app.Interactive {
					return fmt.Errorf("--title and --deadline are required in non-interactive mode")
				}
				if err := taskAddForm(&title, &deadline, &category, &priority).Run(); err != nil {
					return err
				}
			}

			due, err := parseDeadlineArg(deadline)
			if err != nil {
				return err
			}

			task := &domain.Task{
				UserID:      domain.LocalUserID,
				Title:       title,
				Description: description,
				Deadline:    due,
				Category:    domain.TaskCategory(category),
				Priority:    domain.TaskPriority(priority),
			}
			if course != "" {
				c, err := resolveCourse(ctx, app, course)
				if err != nil {
					return err
				}
				task.CourseID = &c.ID
			}

			if err := app.Tasks.Create(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Created task %s, due %s\n", formatter.Bold(task.Title), formatter.RelativeDate(task.Deadline))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Task title")
	cmd.Flags().StringVar(&deadline, "deadline", "", "Deadline (YYYY-MM-DD or RFC3339)")
	cmd.Flags().StringVar(&category, "category", "", "Category (exam|assignment|extra)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&course, "course", "", "Course (name, code, or ID)")
	cmd.Flags().StringVar(&description, "desc", "", "Description")

	return cmd
}

func taskAddForm(title, deadline, category, priority *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("Finish essay draft").
				Value(title).
				Validate(validateRequired),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD)").
				Placeholder("2026-04-15").
				Value(deadline).
				Validate(validateDate),
			huh.NewSelect[string]().
				Title("Category").
				Options(
					huh.NewOption("Assignment", "assignment"),
					huh.NewOption("Exam", "exam"),
					huh.NewOption("Extracurricular", "extra"),
				).
				Value(category),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
					huh.NewOption("Low", "low"),
				).
				Value(priority),
		),
	).WithTheme(semestraHuhTheme()).WithShowHelp(false)
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tasks, err := app.Tasks.List(ctx, domain.LocalUserID)
			if err != nil {
				return err
			}
			if !all {
				open := tasks[:0]
				for _, t := range tasks {
					if t.Status == domain.TaskPending {
						open = append(open, t)
					}
				}
				tasks = open
			}

			courses, err := app.Courses.List(ctx, domain.LocalUserID)
			if err != nil {
				return err
			}
			byID := make(map[string]*domain.Course, len(courses))
			for _, c := range courses {
				byID[c.ID] = c
			}

			fmt.Print(formatter.FormatTaskTable(tasks, byID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed and dropped tasks")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	var mins, drain int
	var note string

	cmd := &cobra.Command{
		Use:   "done ID",
		Short: "Mark a task completed and record feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}

			fb := &domain.Feedback{
				ActualDurationMins: mins,
				DrainIntensity:     drain,
				Note:               note,
			}
			if app.Interactive && !cmd.Flags().Changed("mins") && !cmd.Flags().Changed("drain") {
				var minsStr string
				if err := feedbackForm(&minsStr, fb).Run(); err != nil {
					return err
				}
				fb.ActualDurationMins = parsePositiveInt(minsStr, 0)
			}

			if err := app.Tasks.Complete(ctx, domain.LocalUserID, id, fb); err != nil {
				return err
			}
			fmt.Println(formatter.StyleGreen.Render("✓") + " Task completed")
			return nil
		},
	}

	cmd.Flags().IntVar(&mins, "mins", 0, "Actual minutes spent")
	cmd.Flags().IntVar(&drain, "drain", 0, "Drain intensity (1-5)")
	cmd.Flags().StringVar(&note, "note", "", "Feedback note")
	return cmd
}

func feedbackForm(mins *string, fb *domain.Feedback) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How long did it take? (minutes)").
				Placeholder("60").
				Value(mins).
				Validate(validatePositiveInt),
			huh.NewSelect[int]().
				Title("How draining was it?").
				Options(
					huh.NewOption("1 — barely noticed", 1),
					huh.NewOption("2 — light", 2),
					huh.NewOption("3 — average", 3),
					huh.NewOption("4 — tiring", 4),
					huh.NewOption("5 — exhausting", 5),
				).
				Value(&fb.DrainIntensity),
			huh.NewText().
				Title("Anything worth noting?").
				Lines(2).
				Value(&fb.Note),
		),
	).WithTheme(semestraHuhTheme()).WithShowHelp(false)
}

func newTaskDropCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "drop ID",
		Short: "Drop a task without completing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Drop(ctx, domain.LocalUserID, id); err != nil {
				return err
			}
			fmt.Println("Task dropped")
			return nil
		},
	}
}

func newTaskRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm ID",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTaskID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Tasks.Delete(ctx, domain.LocalUserID, id); err != nil {
				return err
			}
			fmt.Println("Task deleted")
			return nil
		},
	}
}
