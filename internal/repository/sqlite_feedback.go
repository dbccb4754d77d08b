package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/semestra/internal/db"
	"github.com/alexanderramin/semestra/internal/domain"
)

// SQLiteFeedbackRepo implements FeedbackRepo using a SQLite database.
type SQLiteFeedbackRepo struct {
	db db.DBTX
}

// NewSQLiteFeedbackRepo creates a new SQLiteFeedbackRepo.
func NewSQLiteFeedbackRepo(conn db.DBTX) *SQLiteFeedbackRepo {
	return &SQLiteFeedbackRepo{db: conn}
}

func (r *SQLiteFeedbackRepo) Create(ctx context.Context, f *domain.Feedback) error {
	query := `INSERT INTO feedback (id, user_id, task_id, actual_duration_mins,
		drain_intensity, note, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.UserID, f.TaskID, f.ActualDurationMins, f.DrainIntensity,
		f.Note, f.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}
	return nil
}

func (r *SQLiteFeedbackRepo) ListByTask(ctx context.Context, userID, taskID string) ([]*domain.Feedback, error) {
	query := `SELECT id, user_id, task_id, actual_duration_mins, drain_intensity, note, created_at
		FROM feedback WHERE user_id = ? AND task_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, userID, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	defer rows.Close()

	var items []*domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		var createdAt string
		if err := rows.Scan(&f.ID, &f.UserID, &f.TaskID, &f.ActualDurationMins,
			&f.DrainIntensity, &f.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			f.CreatedAt = t
		}
		items = append(items, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback: %w", err)
	}
	return items, nil
}
