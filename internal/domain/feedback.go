package domain

import "time"

// Feedback captures how a completed task actually went. Drain intensity is
// a 1..5 self-report.
type Feedback struct {
	ID                 string
	UserID             string
	TaskID             string
	ActualDurationMins int
	DrainIntensity     int
	Note               string
	CreatedAt          time.Time
}
