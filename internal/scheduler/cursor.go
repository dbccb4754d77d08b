package scheduler

import "time"

const (
	// Daily scheduling window. Fixed by design, not per-user.
	windowStartHour = 8
	windowEndHour   = 22

	// MaxWalkDays bounds how far the cursor may walk looking for a free
	// hour before a task is declared unplaceable.
	MaxWalkDays = 365
)

// slotCursor is a mutable position in calendar time, advanced hour by hour
// at hour granularity.
type slotCursor struct {
	current time.Time
}

func newSlotCursor(now time.Time) *slotCursor {
	return &slotCursor{current: topOfHour(now)}
}

// advanceToNextFree moves the cursor forward to the next hour that is
// inside the daily window and not busy, and returns it. Days past the
// window's end roll over to startHour on the next day. Returns
// ErrUnplaceable once the walk exceeds MaxWalkDays; the cursor is left
// wherever the walk stopped, callers that want to continue should restore
// their own checkpoint.
func (c *slotCursor) advanceToNextFree(cal *BusyCalendar, startHour int) (time.Time, error) {
	limit := c.current.AddDate(0, 0, MaxWalkDays)
	for {
		if c.current.After(limit) {
			return time.Time{}, ErrUnplaceable
		}
		h := c.current.Hour()
		if h < windowStartHour {
			c.current = atHour(c.current, windowStartHour)
			h = windowStartHour
		}
		if h >= windowEndHour {
			c.current = atHour(c.current.AddDate(0, 0, 1), startHour)
			continue
		}
		if cal.IsBusy(mondayIndex(c.current.Weekday()), h) {
			c.current = atHour(c.current, h+1)
			continue
		}
		return c.current, nil
	}
}

// advancePast primes the cursor for the next placement: position at end,
// truncated down to the top of the hour.
func (c *slotCursor) advancePast(end time.Time) {
	c.current = topOfHour(end)
}

func topOfHour(t time.Time) time.Time {
	return atHour(t, t.Hour())
}

// atHour returns t's date at the given hour with minutes and seconds
// zeroed. hour may be 24, which normalizes to midnight of the next day.
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}
