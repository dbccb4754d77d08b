package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/google/uuid"
)

// Timetable holds the domain objects produced from a validated schema,
// ready for persistence.
type Timetable struct {
	Courses   []*domain.Course
	BusySlots []*domain.BusySlot
	Tasks     []*domain.Task
}

// Convert transforms a validated ImportSchema into domain objects for the
// given user. Call ValidateImportSchema first; Convert assumes the schema
// is valid.
func Convert(schema *ImportSchema, userID string) (*Timetable, error) {
	now := time.Now().UTC()
	tt := &Timetable{}

	refMap := make(map[string]string) // course ref -> UUID

	for _, c := range schema.Courses {
		id := uuid.New().String()
		refMap[c.Ref] = id
		tt.Courses = append(tt.Courses, &domain.Course{
			ID:        id,
			UserID:    userID,
			Name:      c.Name,
			Code:      c.Code,
			Color:     c.Color,
			Term:      schema.Term,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	for _, s := range schema.BusySlots {
		slotType := s.SlotType
		if slotType == "" {
			slotType = "class"
		}
		tt.BusySlots = append(tt.BusySlots, &domain.BusySlot{
			ID:        uuid.New().String(),
			UserID:    userID,
			DayOfWeek: s.DayOfWeek,
			StartHour: s.StartHour,
			EndHour:   s.EndHour,
			Title:     s.Title,
			SlotType:  slotType,
			CreatedAt: now,
		})
	}

	for _, t := range schema.Tasks {
		deadline, err := parseDeadline(t.Deadline)
		if err != nil {
			return nil, fmt.Errorf("parsing deadline %q: %w", t.Deadline, err)
		}
		category := domain.TaskCategory(t.Category)
		if t.Category == "" {
			category = domain.CategoryAssignment
		}
		priority := domain.TaskPriority(t.Priority)
		if t.Priority == "" {
			priority = domain.PriorityMedium
		}
		var courseID *string
		if t.CourseRef != nil {
			id := refMap[*t.CourseRef]
			courseID = &id
		}
		tt.Tasks = append(tt.Tasks, &domain.Task{
			ID:          uuid.New().String(),
			UserID:      userID,
			CourseID:    courseID,
			Category:    category,
			Title:       t.Title,
			Description: t.Description,
			Deadline:    deadline,
			Status:      domain.TaskPending,
			Priority:    priority,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return tt, nil
}
