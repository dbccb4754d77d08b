package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/semestra/internal/db"
	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/repository"
	"github.com/google/uuid"
)

const (
	defaultFeedbackDurationMins = 60
	defaultFeedbackDrain        = 3
)

type taskService struct {
	tasks repository.TaskRepo
	uow   db.UnitOfWork
}

func NewTaskService(tasks repository.TaskRepo, uow db.UnitOfWork) TaskService {
	return &taskService{tasks: tasks, uow: uow}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.Deadline.IsZero() {
		return fmt.Errorf("task deadline is required")
	}
	if t.Category == "" {
		t.Category = domain.CategoryAssignment
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Status == "" {
		t.Status = domain.TaskPending
	}
	if !domain.ValidTaskCategories[string(t.Category)] {
		return fmt.Errorf("invalid category %q", t.Category)
	}
	if !domain.ValidTaskPriorities[string(t.Priority)] {
		return fmt.Errorf("invalid priority %q", t.Priority)
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, userID, id)
}

func (s *taskService) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.List(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	if !domain.ValidTaskStatuses[string(t.Status)] {
		return fmt.Errorf("invalid status %q", t.Status)
	}
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

// Complete marks the task completed and records feedback in the same
// transaction. A nil feedback still records a row with the default
// duration and drain so completion history stays complete.
func (s *taskService) Complete(ctx context.Context, userID, id string, fb *domain.Feedback) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		tasks := repository.NewSQLiteTaskRepo(tx)
		feedback := repository.NewSQLiteFeedbackRepo(tx)

		task, err := tasks.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if task.Status == domain.TaskCompleted {
			return fmt.Errorf("task %s is already completed", id)
		}
		task.Status = domain.TaskCompleted
		task.UpdatedAt = time.Now().UTC()
		if err := tasks.Update(ctx, task); err != nil {
			return err
		}

		if fb == nil {
			fb = &domain.Feedback{}
		}
		fb.ID = uuid.New().String()
		fb.UserID = userID
		fb.TaskID = id
		if fb.ActualDurationMins <= 0 {
			fb.ActualDurationMins = defaultFeedbackDurationMins
		}
		if fb.DrainIntensity <= 0 {
			fb.DrainIntensity = defaultFeedbackDrain
		}
		if fb.DrainIntensity > 5 {
			return fmt.Errorf("drain intensity %d out of range 1..5", fb.DrainIntensity)
		}
		fb.CreatedAt = time.Now().UTC()
		return feedback.Create(ctx, fb)
	})
}

func (s *taskService) Drop(ctx context.Context, userID, id string) error {
	task, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	task.Status = domain.TaskDropped
	task.ClearPlan()
	task.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, task)
}

func (s *taskService) Delete(ctx context.Context, userID, id string) error {
	return s.tasks.Delete(ctx, userID, id)
}
