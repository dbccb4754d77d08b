package scheduler

import "github.com/alexanderramin/semestra/internal/domain"

// PreferredStartHour maps a chronotype to the earliest hour-of-day the
// cursor starts from. Advisory only: it seeds the cursor position for the
// first placement of a run, it is not a hard constraint.
func PreferredStartHour(c domain.Chronotype) int {
	switch c {
	case domain.ChronoMorning:
		return 8
	case domain.ChronoNight:
		return 12
	default: // balanced, unset, or unrecognized
		return 10
	}
}
