package domain

import (
	"fmt"
	"time"
)

// BusySlot is a fixed recurring weekly commitment (class, work shift).
// DayOfWeek uses the Monday=0 ... Sunday=6 convention throughout the
// codebase; conversion from time.Weekday happens at the scheduler boundary.
type BusySlot struct {
	ID        string
	UserID    string
	DayOfWeek int
	StartHour int
	EndHour   int // exclusive
	Title     string
	SlotType  string
	CreatedAt time.Time
}

// Validate checks the slot's hour and day ranges.
func (s BusySlot) Validate() error {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return fmt.Errorf("day_of_week %d out of range 0..6", s.DayOfWeek)
	}
	if s.StartHour < 0 || s.StartHour > 23 {
		return fmt.Errorf("start_hour %d out of range 0..23", s.StartHour)
	}
	if s.EndHour < 1 || s.EndHour > 24 {
		return fmt.Errorf("end_hour %d out of range 1..24", s.EndHour)
	}
	if s.StartHour >= s.EndHour {
		return fmt.Errorf("start_hour %d must be before end_hour %d", s.StartHour, s.EndHour)
	}
	return nil
}
