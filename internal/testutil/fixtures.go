package testutil

import (
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/google/uuid"
)

// TestUserID is the account most fixtures attach to.
const TestUserID = "local"

// Task options
type TaskOption func(*domain.Task)

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) {
		t.Status = s
	}
}

func WithCategory(c domain.TaskCategory) TaskOption {
	return func(t *domain.Task) {
		t.Category = c
	}
}

func WithPriority(p domain.TaskPriority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithCourse(courseID string) TaskOption {
	return func(t *domain.Task) {
		t.CourseID = &courseID
	}
}

func WithPlan(start, end time.Time) TaskOption {
	return func(t *domain.Task) {
		t.PlannedStart = &start
		t.PlannedEnd = &end
	}
}

func NewTestTask(title string, deadline time.Time, opts ...TaskOption) *domain.Task {
	now := time.Now().UTC().Truncate(time.Second)
	t := &domain.Task{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Category:  domain.CategoryAssignment,
		Title:     title,
		Deadline:  deadline,
		Status:    domain.TaskPending,
		Priority:  domain.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func NewTestSlot(day, start, end int) *domain.BusySlot {
	return &domain.BusySlot{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		DayOfWeek: day,
		StartHour: start,
		EndHour:   end,
		SlotType:  "class",
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func NewTestProfile(chronotype domain.Chronotype, sessionMins int) *domain.Profile {
	return &domain.Profile{
		UserID:               TestUserID,
		Chronotype:           chronotype,
		WorkStyle:            domain.StyleMixed,
		PreferredSessionMins: sessionMins,
	}
}

func NewTestCourse(name, code string) *domain.Course {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Course{
		ID:        uuid.New().String(),
		UserID:    TestUserID,
		Name:      name,
		Code:      code,
		Color:     "#83a598",
		Term:      "2026S",
		CreatedAt: now,
		UpdatedAt: now,
	}
}
