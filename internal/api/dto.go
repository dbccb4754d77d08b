package api

import (
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/scheduler"
)

type taskDTO struct {
	ID           string     `json:"id"`
	CourseID     *string    `json:"course_id,omitempty"`
	Category     string     `json:"category"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Deadline     time.Time  `json:"deadline"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	PlannedStart *time.Time `json:"planned_start,omitempty"`
	PlannedEnd   *time.Time `json:"planned_end,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func toTaskDTO(t *domain.Task) taskDTO {
	return taskDTO{
		ID:           t.ID,
		CourseID:     t.CourseID,
		Category:     string(t.Category),
		Title:        t.Title,
		Description:  t.Description,
		Deadline:     t.Deadline,
		Status:       string(t.Status),
		Priority:     string(t.Priority),
		PlannedStart: t.PlannedStart,
		PlannedEnd:   t.PlannedEnd,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

type taskRequest struct {
	CourseID    *string   `json:"course_id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
}

type slotDTO struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
	Title     string `json:"title,omitempty"`
	SlotType  string `json:"slot_type"`
}

func toSlotDTO(s *domain.BusySlot) slotDTO {
	return slotDTO{
		ID:        s.ID,
		DayOfWeek: s.DayOfWeek,
		StartHour: s.StartHour,
		EndHour:   s.EndHour,
		Title:     s.Title,
		SlotType:  s.SlotType,
	}
}

type slotRequest struct {
	DayOfWeek int    `json:"day_of_week"`
	StartHour int    `json:"start_hour"`
	EndHour   int    `json:"end_hour"`
	Title     string `json:"title"`
	SlotType  string `json:"slot_type"`
}

type courseDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code,omitempty"`
	Color string `json:"color,omitempty"`
	Term  string `json:"term,omitempty"`
}

func toCourseDTO(c *domain.Course) courseDTO {
	return courseDTO{ID: c.ID, Name: c.Name, Code: c.Code, Color: c.Color, Term: c.Term}
}

type profileDTO struct {
	Name                 string `json:"name,omitempty"`
	University           string `json:"university,omitempty"`
	Major                string `json:"major,omitempty"`
	Chronotype           string `json:"chronotype"`
	WorkStyle            string `json:"work_style"`
	PreferredSessionMins int    `json:"preferred_session_mins"`
	CalendarWriteEnabled bool   `json:"calendar_write_enabled"`
}

func toProfileDTO(p *domain.Profile) profileDTO {
	return profileDTO{
		Name:                 p.Name,
		University:           p.University,
		Major:                p.Major,
		Chronotype:           string(p.Chronotype),
		WorkStyle:            string(p.WorkStyle),
		PreferredSessionMins: p.PreferredSessionMins,
		CalendarWriteEnabled: p.CalendarWriteEnabled,
	}
}

type scheduleRunDTO struct {
	Assignments      []assignmentDTO      `json:"assignments"`
	Unplaceable      []string             `json:"unplaceable"`
	DeadlineWarnings []deadlineWarningDTO `json:"deadline_warnings"`
}

type assignmentDTO struct {
	TaskID       string    `json:"task_id"`
	PlannedStart time.Time `json:"planned_start"`
	PlannedEnd   time.Time `json:"planned_end"`
}

type deadlineWarningDTO struct {
	TaskID     string    `json:"task_id"`
	Deadline   time.Time `json:"deadline"`
	PlannedEnd time.Time `json:"planned_end"`
}

func toScheduleRunDTO(res *scheduler.Result) scheduleRunDTO {
	out := scheduleRunDTO{
		Assignments:      []assignmentDTO{},
		Unplaceable:      []string{},
		DeadlineWarnings: []deadlineWarningDTO{},
	}
	for _, a := range res.Assignments {
		out.Assignments = append(out.Assignments, assignmentDTO(a))
	}
	out.Unplaceable = append(out.Unplaceable, res.Unplaceable...)
	for _, w := range res.DeadlineWarnings {
		out.DeadlineWarnings = append(out.DeadlineWarnings, deadlineWarningDTO(w))
	}
	return out
}
