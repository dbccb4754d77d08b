package scheduler

import (
	"fmt"

	"github.com/alexanderramin/semestra/internal/domain"
)

// BusyCalendar is an immutable-per-run index of fixed weekly commitments,
// queryable by (day-of-week, hour) in O(1). Days use Monday=0.
type BusyCalendar struct {
	grid [7][24]bool
}

// NewBusyCalendar builds a calendar from the given slots. Every slot is
// validated first; a bad slot fails the whole construction so no partial
// calendar is ever used. Overlapping slots are fine, marking an hour twice
// is a no-op.
func NewBusyCalendar(slots []domain.BusySlot) (*BusyCalendar, error) {
	cal := &BusyCalendar{}
	for _, s := range slots {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
		}
		for h := s.StartHour; h < s.EndHour; h++ {
			cal.grid[s.DayOfWeek][h] = true
		}
	}
	return cal, nil
}

// IsBusy reports whether (dayOfWeek, hour) is covered by a commitment.
// Callers are responsible for keeping hour within [0,24).
func (c *BusyCalendar) IsBusy(dayOfWeek, hour int) bool {
	return c.grid[dayOfWeek][hour]
}
