package domain

import "time"

type Task struct {
	ID          string
	UserID      string
	CourseID    *string
	Category    TaskCategory
	Title       string
	Description string
	Deadline    time.Time
	Status      TaskStatus
	Priority    TaskPriority

	// Set by the scheduler; both nil or both non-nil with start < end.
	PlannedStart *time.Time
	PlannedEnd   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Schedulable reports whether the task is eligible for placement.
func (t *Task) Schedulable() bool {
	return t.Status == TaskPending
}

// ClearPlan removes any planned times from the task.
func (t *Task) ClearPlan() {
	t.PlannedStart = nil
	t.PlannedEnd = nil
}
