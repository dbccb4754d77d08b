package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/semestra/internal/db"
	"github.com/alexanderramin/semestra/internal/domain"
)

const courseColumns = `id, user_id, name, code, color, term, created_at, updated_at`

// SQLiteCourseRepo implements CourseRepo using a SQLite database.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(conn db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: conn}
}

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	query := `INSERT INTO courses (` + courseColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.Name, c.Code, c.Color, c.Term,
		c.CreatedAt.Format(time.RFC3339), c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, userID, id string) (*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)

	c, err := scanCourse(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("course: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning course: %w", err)
	}
	return c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context, userID string) ([]*domain.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE user_id = ? ORDER BY name, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	c.UpdatedAt = time.Now().UTC()
	query := `UPDATE courses SET name = ?, code = ?, color = ?, term = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`
	result, err := r.db.ExecContext(ctx, query,
		c.Name, c.Code, c.Color, c.Term, c.UpdatedAt.Format(time.RFC3339), c.UserID, c.ID)
	if err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	return requireRow(result, "course")
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM courses WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return requireRow(result, "course")
}

func scanCourse(scan func(...any) error) (*domain.Course, error) {
	var c domain.Course
	var createdAt, updatedAt string
	if err := scan(&c.ID, &c.UserID, &c.Name, &c.Code, &c.Color, &c.Term,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		c.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		c.UpdatedAt = t
	}
	return &c, nil
}
