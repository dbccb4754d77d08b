package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/semestra/internal/domain"
)

// Monday 2026-03-02.
var weekNow = time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)

func TestWeekStart(t *testing.T) {
	monday := weekStart(weekNow)
	assert.Equal(t, time.Monday, monday.Weekday())
	assert.Equal(t, 2, monday.Day())
	assert.Equal(t, 0, monday.Hour())

	// A Sunday belongs to the week that started six days earlier.
	sunday := time.Date(2026, time.March, 8, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, weekStart(sunday).Day())
}

func TestEntriesForWeek(t *testing.T) {
	monday := weekStart(weekNow)
	start := monday.AddDate(0, 0, 1).Add(10 * time.Hour)
	end := start.Add(time.Hour)
	outside := monday.AddDate(0, 0, 9).Add(10 * time.Hour)
	outsideEnd := outside.Add(time.Hour)

	tasks := []*domain.Task{
		{Title: "in week", PlannedStart: &start, PlannedEnd: &end},
		{Title: "next week", PlannedStart: &outside, PlannedEnd: &outsideEnd},
		{Title: "unplanned"},
	}
	slots := []*domain.BusySlot{
		{DayOfWeek: 1, StartHour: 9, EndHour: 10, Title: "lecture"},
		{DayOfWeek: 1, StartHour: 14, EndHour: 16},
	}

	days := entriesForWeek(monday, tasks, slots)

	assert.Len(t, days[1], 3)
	assert.Empty(t, days[0])
	// Sorted by start time; the 09:00 lecture comes first.
	assert.Equal(t, "lecture", days[1][0].title)
	assert.True(t, days[1][0].busy)
	assert.Equal(t, "in week", days[1][1].title)
	assert.False(t, days[1][1].busy)
}

func TestModel_Navigation(t *testing.T) {
	m := NewWeekModel(nil, nil, weekNow)
	monday := m.monday

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	assert.Equal(t, monday.AddDate(0, 0, 7), m.monday)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = next.(Model)
	assert.Equal(t, monday, m.monday)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(Model)
	assert.Equal(t, monday.AddDate(0, 0, -7), m.monday)
}

func TestModel_QuitKey(t *testing.T) {
	m := NewWeekModel(nil, nil, weekNow)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_View(t *testing.T) {
	start := weekStart(weekNow).Add(10 * time.Hour)
	end := start.Add(time.Hour)
	m := NewWeekModel(
		[]*domain.Task{{Title: "essay session", PlannedStart: &start, PlannedEnd: &end}},
		[]*domain.BusySlot{{DayOfWeek: 4, StartHour: 9, EndHour: 11, Title: "seminar"}},
		weekNow,
	)

	out := m.View()
	assert.Contains(t, out, "essay session")
	assert.Contains(t, out, "seminar")
	assert.Contains(t, out, "today")
	assert.Contains(t, out, "10:00-11:00")
}
