package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/semestra/internal/db"
	"github.com/alexanderramin/semestra/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, user_id, course_id, category, title, description,
		deadline, status, priority, planned_start, planned_end, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.UserID,
		nullableStringToValue(t.CourseID),
		string(t.Category),
		t.Title,
		t.Description,
		t.Deadline.Format(time.RFC3339),
		string(t.Status),
		string(t.Priority),
		nullableTimeToString(t.PlannedStart, time.RFC3339),
		nullableTimeToString(t.PlannedEnd, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, userID, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? ORDER BY deadline, created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

// ListPending returns the user's pending tasks in a stable order so
// repeated scheduler runs see the same input sequence.
func (r *SQLiteTaskRepo) ListPending(ctx context.Context, userID string) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks
		WHERE user_id = ? AND status = 'pending'
		ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing pending tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	query := `UPDATE tasks SET course_id = ?, category = ?, title = ?, description = ?,
		deadline = ?, status = ?, priority = ?, planned_start = ?, planned_end = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`
	result, err := r.db.ExecContext(ctx, query,
		nullableStringToValue(t.CourseID),
		string(t.Category),
		t.Title,
		t.Description,
		t.Deadline.Format(time.RFC3339),
		string(t.Status),
		string(t.Priority),
		nullableTimeToString(t.PlannedStart, time.RFC3339),
		nullableTimeToString(t.PlannedEnd, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		t.UserID,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRow(result, "task")
}

func (r *SQLiteTaskRepo) SetPlannedTimes(ctx context.Context, userID, id string, start, end time.Time) error {
	query := `UPDATE tasks SET planned_start = ?, planned_end = ?, updated_at = ?
		WHERE user_id = ? AND id = ?`
	result, err := r.db.ExecContext(ctx, query,
		start.Format(time.RFC3339),
		end.Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		userID,
		id,
	)
	if err != nil {
		return fmt.Errorf("setting planned times: %w", err)
	}
	return requireRow(result, "task")
}

func (r *SQLiteTaskRepo) ClearPlannedTimes(ctx context.Context, userID, id string) error {
	query := `UPDATE tasks SET planned_start = NULL, planned_end = NULL, updated_at = ?
		WHERE user_id = ? AND id = ?`
	result, err := r.db.ExecContext(ctx, query,
		time.Now().UTC().Format(time.RFC3339), userID, id)
	if err != nil {
		return fmt.Errorf("clearing planned times: %w", err)
	}
	return requireRow(result, "task")
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM tasks WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRow(result, "task")
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var courseID, plannedStart, plannedEnd sql.NullString
	var category, status, priority, deadline, createdAt, updatedAt string

	err := row.Scan(
		&t.ID, &t.UserID, &courseID, &category, &t.Title, &t.Description,
		&deadline, &status, &priority, &plannedStart, &plannedEnd, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	r.hydrate(&t, courseID, category, status, priority, deadline, plannedStart, plannedEnd, createdAt, updatedAt)
	return &t, nil
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var courseID, plannedStart, plannedEnd sql.NullString
		var category, status, priority, deadline, createdAt, updatedAt string
		if err := rows.Scan(
			&t.ID, &t.UserID, &courseID, &category, &t.Title, &t.Description,
			&deadline, &status, &priority, &plannedStart, &plannedEnd, &createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		r.hydrate(&t, courseID, category, status, priority, deadline, plannedStart, plannedEnd, createdAt, updatedAt)
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}

func (r *SQLiteTaskRepo) hydrate(t *domain.Task, courseID sql.NullString,
	category, status, priority, deadline string,
	plannedStart, plannedEnd sql.NullString, createdAt, updatedAt string) {
	t.CourseID = nullStringToPtr(courseID)
	t.Category = domain.TaskCategory(category)
	t.Status = domain.TaskStatus(status)
	t.Priority = domain.TaskPriority(priority)
	if d, err := time.Parse(time.RFC3339, deadline); err == nil {
		t.Deadline = d
	}
	t.PlannedStart = parseNullableTime(plannedStart, time.RFC3339)
	t.PlannedEnd = parseNullableTime(plannedEnd, time.RFC3339)
	if c, err := time.Parse(time.RFC3339, createdAt); err == nil {
		t.CreatedAt = c
	}
	if u, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		t.UpdatedAt = u
	}
}

// requireRow maps a zero-row UPDATE/DELETE to ErrNotFound.
func requireRow(result sql.Result, entity string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, ErrNotFound)
	}
	return nil
}
