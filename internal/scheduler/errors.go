package scheduler

import "errors"

var (
	// ErrInvalidSlot rejects a busy slot with out-of-range or inverted
	// hours at calendar construction, before any placement is attempted.
	ErrInvalidSlot = errors.New("invalid busy slot")

	// ErrUnplaceable means the cursor walked MaxWalkDays days without
	// finding a free hour for a task.
	ErrUnplaceable = errors.New("no free slot within walk bound")
)
