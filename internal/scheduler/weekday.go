package scheduler

import "time"

// mondayIndex converts time.Weekday (Sunday=0) to the Monday=0 ... Sunday=6
// convention used by BusySlot storage. This is the only place the two
// indexing schemes meet.
func mondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}
