package service

import (
	"context"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/importer"
	"github.com/alexanderramin/semestra/internal/scheduler"
)

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Complete(ctx context.Context, userID, id string, fb *domain.Feedback) error
	Drop(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
}

type BusySlotService interface {
	Add(ctx context.Context, s *domain.BusySlot) error
	List(ctx context.Context, userID string) ([]*domain.BusySlot, error)
	ReplaceAll(ctx context.Context, userID string, slots []domain.BusySlot) error
	Delete(ctx context.Context, userID, id string) error
}

type ProfileService interface {
	// Get never fails on a missing profile: it falls back to the
	// documented defaults so scheduling always has something to work with.
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
}

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, userID, id string) (*domain.Course, error)
	List(ctx context.Context, userID string) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, userID, id string) error
}

type ScheduleService interface {
	// Run recomputes placements for all of the user's pending tasks from
	// the current clock forward and persists them atomically. Runs for
	// the same user are serialized; different users may run in parallel.
	Run(ctx context.Context, userID string) (*scheduler.Result, error)
}

// ImportResult holds the outcome of a timetable import.
type ImportResult struct {
	CourseCount int
	SlotCount   int
	TaskCount   int
}

type ImportService interface {
	ImportTimetable(ctx context.Context, userID, filePath string) (*ImportResult, error)
	ImportTimetableFromSchema(ctx context.Context, userID string, schema *importer.ImportSchema) (*ImportResult, error)
}
