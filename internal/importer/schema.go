package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for a semester timetable
// import: courses, the weekly busy grid, and optionally seed tasks.
type ImportSchema struct {
	Term      string         `json:"term,omitempty"`
	Courses   []CourseImport `json:"courses,omitempty"`
	BusySlots []SlotImport   `json:"busy_slots,omitempty"`
	Tasks     []TaskImport   `json:"tasks,omitempty"`
}

// CourseImport defines a course in the import file.
type CourseImport struct {
	Ref   string `json:"ref"`
	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
	Color string `json:"color,omitempty"`
}

// SlotImport defines one fixed weekly commitment. day_of_week uses
// Monday=0 ... Sunday=6, hours are 24-hour with an exclusive end.
type SlotImport struct {
	DayOfWeek int    `json:"day_of_week"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
	Title     string `json:"title,omitempty"`
	SlotType  string `json:"slot_type,omitempty"`
}

// TaskImport defines a seed task in the import file.
type TaskImport struct {
	Title       string  `json:"title"`
	Category    string  `json:"category,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	Deadline    string  `json:"deadline"` // YYYY-MM-DD or RFC3339
	Description string  `json:"description,omitempty"`
	CourseRef   *string `json:"course_ref,omitempty"`
}

// LoadFile reads and unmarshals an import file.
func LoadFile(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
