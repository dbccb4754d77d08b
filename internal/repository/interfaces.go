package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist for the user.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID, id string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	ListPending(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetPlannedTimes(ctx context.Context, userID, id string, start, end time.Time) error
	ClearPlannedTimes(ctx context.Context, userID, id string) error
	Delete(ctx context.Context, userID, id string) error
}

type BusySlotRepo interface {
	Create(ctx context.Context, s *domain.BusySlot) error
	List(ctx context.Context, userID string) ([]*domain.BusySlot, error)
	ReplaceAll(ctx context.Context, userID string, slots []domain.BusySlot) error
	Delete(ctx context.Context, userID, id string) error
}

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, userID, id string) (*domain.Course, error)
	List(ctx context.Context, userID string) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, userID, id string) error
}

type FeedbackRepo interface {
	Create(ctx context.Context, f *domain.Feedback) error
	ListByTask(ctx context.Context, userID, taskID string) ([]*domain.Feedback, error)
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
