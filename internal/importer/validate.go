package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
)

// ValidateImportSchema checks the import schema for errors before
// conversion. Returns a slice of all validation errors found; an empty
// slice means the schema is safe to convert.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	courseRefs := make(map[string]bool)
	for i, c := range schema.Courses {
		if c.Ref == "" {
			errs = append(errs, fmt.Errorf("courses[%d].ref is required", i))
		} else if courseRefs[c.Ref] {
			errs = append(errs, fmt.Errorf("courses[%d].ref %q is duplicated", i, c.Ref))
		}
		courseRefs[c.Ref] = true
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("courses[%d].name is required", i))
		}
	}

	for i, s := range schema.BusySlots {
		slot := domain.BusySlot{
			DayOfWeek: s.DayOfWeek,
			StartHour: s.StartHour,
			EndHour:   s.EndHour,
		}
		if err := slot.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("busy_slots[%d]: %v", i, err))
		}
	}

	for i, t := range schema.Tasks {
		if t.Title == "" {
			errs = append(errs, fmt.Errorf("tasks[%d].title is required", i))
		}
		if t.Deadline == "" {
			errs = append(errs, fmt.Errorf("tasks[%d].deadline is required", i))
		} else if _, err := parseDeadline(t.Deadline); err != nil {
			errs = append(errs, fmt.Errorf("tasks[%d].deadline: invalid value %q (expected YYYY-MM-DD or RFC3339)", i, t.Deadline))
		}
		if t.Category != "" && !domain.ValidTaskCategories[t.Category] {
			errs = append(errs, fmt.Errorf("tasks[%d].category: invalid value %q", i, t.Category))
		}
		if t.Priority != "" && !domain.ValidTaskPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("tasks[%d].priority: invalid value %q", i, t.Priority))
		}
		if t.CourseRef != nil && !courseRefs[*t.CourseRef] {
			errs = append(errs, fmt.Errorf("tasks[%d].course_ref: unknown ref %q", i, *t.CourseRef))
		}
	}

	return errs
}

func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	// Date-only deadlines mean end of that day.
	return t.Add(23*time.Hour + 59*time.Minute), nil
}
