package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/semestra/internal/db"
	"github.com/alexanderramin/semestra/internal/domain"
)

const busySlotColumns = `id, user_id, day_of_week, start_hour, end_hour, title, slot_type, created_at`

// SQLiteBusySlotRepo implements BusySlotRepo using a SQLite database.
type SQLiteBusySlotRepo struct {
	db db.DBTX
}

// NewSQLiteBusySlotRepo creates a new SQLiteBusySlotRepo.
func NewSQLiteBusySlotRepo(conn db.DBTX) *SQLiteBusySlotRepo {
	return &SQLiteBusySlotRepo{db: conn}
}

func (r *SQLiteBusySlotRepo) Create(ctx context.Context, s *domain.BusySlot) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("busy slot: %w", err)
	}
	query := `INSERT INTO busy_slots (` + busySlotColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.DayOfWeek, s.StartHour, s.EndHour,
		s.Title, s.SlotType, s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting busy slot: %w", err)
	}
	return nil
}

func (r *SQLiteBusySlotRepo) List(ctx context.Context, userID string) ([]*domain.BusySlot, error) {
	query := `SELECT ` + busySlotColumns + ` FROM busy_slots
		WHERE user_id = ? ORDER BY day_of_week, start_hour, id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing busy slots: %w", err)
	}
	defer rows.Close()

	var slots []*domain.BusySlot
	for rows.Next() {
		var s domain.BusySlot
		var createdAt string
		if err := rows.Scan(&s.ID, &s.UserID, &s.DayOfWeek, &s.StartHour, &s.EndHour,
			&s.Title, &s.SlotType, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning busy slot: %w", err)
		}
		if c, err := time.Parse(time.RFC3339, createdAt); err == nil {
			s.CreatedAt = c
		}
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating busy slots: %w", err)
	}
	return slots, nil
}

// ReplaceAll swaps the user's entire weekly grid, the contract of the bulk
// onboarding endpoint. Callers wrap this in a transaction.
func (r *SQLiteBusySlotRepo) ReplaceAll(ctx context.Context, userID string, slots []domain.BusySlot) error {
	for _, s := range slots {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("busy slot: %w", err)
		}
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM busy_slots WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clearing busy slots: %w", err)
	}
	for i := range slots {
		s := slots[i]
		s.UserID = userID
		if err := r.Create(ctx, &s); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteBusySlotRepo) Delete(ctx context.Context, userID, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM busy_slots WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("deleting busy slot: %w", err)
	}
	return requireRow(result, "busy slot")
}
