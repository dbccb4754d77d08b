package tui

import (
	"sort"
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
)

// weekStart returns the Monday 00:00 of the week containing t.
func weekStart(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// dayEntry is one rendered line in a day column: either a fixed busy slot
// or a planned study session.
type dayEntry struct {
	start time.Time
	end   time.Time
	title string
	busy  bool
}

// entriesForWeek collects busy slots and planned sessions falling inside
// the week starting at monday, grouped by day offset 0..6.
func entriesForWeek(monday time.Time, tasks []*domain.Task, slots []*domain.BusySlot) [7][]dayEntry {
	var days [7][]dayEntry

	for _, s := range slots {
		day := monday.AddDate(0, 0, s.DayOfWeek)
		title := s.Title
		if title == "" {
			title = s.SlotType
		}
		days[s.DayOfWeek] = append(days[s.DayOfWeek], dayEntry{
			start: day.Add(time.Duration(s.StartHour) * time.Hour),
			end:   day.Add(time.Duration(s.EndHour) * time.Hour),
			title: title,
			busy:  true,
		})
	}

	weekEnd := monday.AddDate(0, 0, 7)
	for _, t := range tasks {
		if t.PlannedStart == nil || t.PlannedEnd == nil {
			continue
		}
		if t.PlannedStart.Before(monday) || !t.PlannedStart.Before(weekEnd) {
			continue
		}
		offset := int(t.PlannedStart.Sub(monday).Hours() / 24)
		if offset < 0 || offset > 6 {
			continue
		}
		days[offset] = append(days[offset], dayEntry{
			start: *t.PlannedStart,
			end:   *t.PlannedEnd,
			title: t.Title,
		})
	}

	for i := range days {
		sort.Slice(days[i], func(a, b int) bool {
			return days[i][a].start.Before(days[i][b].start)
		})
	}
	return days
}
