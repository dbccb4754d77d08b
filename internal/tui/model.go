package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/semestra/internal/cli/formatter"
	"github.com/alexanderramin/semestra/internal/domain"
)

type keyMap struct {
	PrevWeek key.Binding
	NextWeek key.Binding
	Today    key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevWeek, k.NextWeek, k.Today, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.PrevWeek, k.NextWeek, k.Today, k.Quit}}
}

var defaultKeys = keyMap{
	PrevWeek: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous week")),
	NextWeek: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next week")),
	Today:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "this week")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// Model is the bubbletea week-calendar view of planned sessions and busy
// slots.
type Model struct {
	tasks []*domain.Task
	slots []*domain.BusySlot
	now   time.Time

	monday time.Time
	width  int
	keys   keyMap
	help   help.Model
}

// NewWeekModel builds the week view anchored to the week containing now.
func NewWeekModel(tasks []*domain.Task, slots []*domain.BusySlot, now time.Time) Model {
	return Model{
		tasks:  tasks,
		slots:  slots,
		now:    now,
		monday: weekStart(now),
		keys:   defaultKeys,
		help:   help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.PrevWeek):
			m.monday = m.monday.AddDate(0, 0, -7)
			return m, nil
		case key.Matches(msg, m.keys.NextWeek):
			m.monday = m.monday.AddDate(0, 0, 7)
			return m, nil
		case key.Matches(msg, m.keys.Today):
			m.monday = weekStart(m.now)
			return m, nil
		}
	}
	return m, nil
}

var (
	dayHeaderStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	todayStyle     = lipgloss.NewStyle().Foreground(formatter.ColorGreen).Bold(true)
	busyStyle      = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sessionStyle   = lipgloss.NewStyle().Foreground(formatter.ColorBlue)
)

func (m Model) View() string {
	var b strings.Builder

	sunday := m.monday.AddDate(0, 0, 6)
	b.WriteString(formatter.Header(fmt.Sprintf("Week of %s – %s",
		m.monday.Format("Jan 2"), sunday.Format("Jan 2, 2006"))))
	b.WriteString("\n\n")

	days := entriesForWeek(m.monday, m.tasks, m.slots)
	for i := 0; i < 7; i++ {
		date := m.monday.AddDate(0, 0, i)
		header := fmt.Sprintf("%s %s", formatter.DayName(i), date.Format("Jan 2"))
		if sameDay(date, m.now) {
			b.WriteString(todayStyle.Render(header + "  ● today"))
		} else {
			b.WriteString(dayHeaderStyle.Render(header))
		}
		b.WriteString("\n")

		if len(days[i]) == 0 {
			b.WriteString(busyStyle.Render("  free") + "\n")
		}
		for _, e := range days[i] {
			line := fmt.Sprintf("  %s-%s  %s",
				e.start.Format("15:04"), e.end.Format("15:04"), e.title)
			if e.busy {
				b.WriteString(busyStyle.Render(line))
			} else {
				b.WriteString(sessionStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
