package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/semestra/internal/domain"
)

// resolveTaskID resolves a task identifier which can be a full UUID or a
// unique UUID prefix as shown in list output.
func resolveTaskID(ctx context.Context, app *App, input string) (string, error) {
	tasks, err := app.Tasks.List(ctx, domain.LocalUserID)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, t := range tasks {
		if t.ID == input {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no task matches %q", input)
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches), use more characters", input, len(matches))
	}
}

func resolveSlotID(ctx context.Context, app *App, input string) (string, error) {
	slots, err := app.Slots.List(ctx, domain.LocalUserID)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, s := range slots {
		if s.ID == input {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no busy slot matches %q", input)
	default:
		return "", fmt.Errorf("%q is ambiguous (%d matches), use more characters", input, len(matches))
	}
}

// resolveCourse resolves a course by UUID, UUID prefix, code, or name
// (case-insensitive).
func resolveCourse(ctx context.Context, app *App, input string) (*domain.Course, error) {
	courses, err := app.Courses.List(ctx, domain.LocalUserID)
	if err != nil {
		return nil, err
	}
	var matches []*domain.Course
	for _, c := range courses {
		if c.ID == input || strings.EqualFold(c.Code, input) || strings.EqualFold(c.Name, input) {
			return c, nil
		}
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return nil, fmt.Errorf("no course matches %q", input)
	default:
		return nil, fmt.Errorf("%q is ambiguous (%d matches), use more characters", input, len(matches))
	}
}
