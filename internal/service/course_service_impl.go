package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/semestra/internal/domain"
	"github.com/alexanderramin/semestra/internal/repository"
	"github.com/google/uuid"
)

type courseService struct {
	courses repository.CourseRepo
}

func NewCourseService(courses repository.CourseRepo) CourseService {
	return &courseService{courses: courses}
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) error {
	if c.Name == "" {
		return fmt.Errorf("course name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.courses.Create(ctx, c)
}

func (s *courseService) GetByID(ctx context.Context, userID, id string) (*domain.Course, error) {
	return s.courses.GetByID(ctx, userID, id)
}

func (s *courseService) List(ctx context.Context, userID string) ([]*domain.Course, error) {
	return s.courses.List(ctx, userID)
}

func (s *courseService) Update(ctx context.Context, c *domain.Course) error {
	c.UpdatedAt = time.Now().UTC()
	return s.courses.Update(ctx, c)
}

func (s *courseService) Delete(ctx context.Context, userID, id string) error {
	return s.courses.Delete(ctx, userID, id)
}
