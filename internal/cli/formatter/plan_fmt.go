package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/scheduler"
)

// FormatPlan renders a full scheduling run: placed sessions grouped in a
// table, then unplaceable tasks and deadline warnings if any.
func FormatPlan(result *scheduler.Result, tasksByID map[string]*domain.Task) string {
	var b strings.Builder

	b.WriteString(Header("Study Plan"))
	b.WriteString("\n")

	if len(result.Assignments) == 0 {
		b.WriteString(Dim("Nothing to schedule.") + "\n")
	} else {
		headers := []string{"WHEN", "TASK", "DEADLINE"}
		rows := make([][]string, 0, len(result.Assignments))
		for _, a := range result.Assignments {
			title := a.TaskID
			deadline := ""
			if t, ok := tasksByID[a.TaskID]; ok {
				title = t.Title
				deadline = RelativeDateStyled(t.Deadline)
			}
			when := fmt.Sprintf("%s %s",
				Bold(a.PlannedStart.Format("Mon Jan 2")),
				a.PlannedStart.Format("15:04")+Dim("-")+a.PlannedEnd.Format("15:04"))
			rows = append(rows, []string{when, title, deadline})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if len(result.Unplaceable) > 0 {
		b.WriteString("\n")
		b.WriteString(StyleRed.Render("Could not place:"))
		b.WriteString("\n")
		for _, id := range result.Unplaceable {
			title := id
			if t, ok := tasksByID[id]; ok {
				title = t.Title
			}
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("✗"), title))
		}
	}

	if len(result.DeadlineWarnings) > 0 {
		b.WriteString("\n")
		for _, w := range result.DeadlineWarnings {
			title := w.TaskID
			if t, ok := tasksByID[w.TaskID]; ok {
				title = t.Title
			}
			b.WriteString(fmt.Sprintf("  %s %s ends %s, after its deadline (%s)\n",
				StyleYellow.Render("!"),
				title,
				w.PlannedEnd.Format("Jan 2 15:04"),
				w.Deadline.Format("Jan 2 15:04")))
		}
	}

	return b.String()
}
