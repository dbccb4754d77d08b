package formatter

import (
	"strings"

	"github.com/alexanderramin/semestra/internal/domain"
)

// FormatTaskTable renders the task list with status, priority, and any
// planned session.
func FormatTaskTable(tasks []*domain.Task, coursesByID map[string]*domain.Course) string {
	if len(tasks) == 0 {
		return Dim("No tasks yet. Add one with `semestra task add`.") + "\n"
	}

	headers := []string{"ID", "TASK", "COURSE", "DUE", "PRIORITY", "STATUS", "PLANNED"}
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		course := ""
		if t.CourseID != nil {
			if c, ok := coursesByID[*t.CourseID]; ok {
				course = c.Code
				if course == "" {
					course = c.Name
				}
			}
		}
		planned := Dim("—")
		if t.PlannedStart != nil && t.PlannedEnd != nil {
			planned = t.PlannedStart.Format("Mon Jan 2 15:04") + Dim("-") + t.PlannedEnd.Format("15:04")
		}
		rows = append(rows, []string{
			TruncID(t.ID),
			t.Title,
			StyleBlue.Render(course),
			RelativeDateStyled(t.Deadline),
			PriorityColor(t.Priority).Render(strings.ToUpper(string(t.Priority))),
			StatusPill(t.Status),
			planned,
		})
	}
	return RenderTable(headers, rows)
}

// FormatBusyTable renders the weekly busy grid as a table.
func FormatBusyTable(slots []*domain.BusySlot) string {
	if len(slots) == 0 {
		return Dim("No busy slots. Add one with `semestra busy add`.") + "\n"
	}

	headers := []string{"ID", "DAY", "HOURS", "TITLE", "TYPE"}
	rows := make([][]string, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, []string{
			TruncID(s.ID),
			Bold(DayName(s.DayOfWeek)),
			HourRange(s.StartHour, s.EndHour),
			s.Title,
			Dim(s.SlotType),
		})
	}
	return RenderTable(headers, rows)
}

// FormatCourseTable renders the course list.
func FormatCourseTable(courses []*domain.Course) string {
	if len(courses) == 0 {
		return Dim("No courses yet.") + "\n"
	}

	headers := []string{"ID", "NAME", "CODE", "TERM"}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, []string{
			TruncID(c.ID),
			c.Name,
			StyleBlue.Render(c.Code),
			Dim(c.Term),
		})
	}
	return RenderTable(headers, rows)
}
