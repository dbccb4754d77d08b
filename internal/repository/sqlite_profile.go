package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/semestra/internal/db"
	"github.com/alexanderramin/semestra/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT user_id, name, university, major, chronotype, work_style,
		preferred_session_mins, calendar_write_enabled
		FROM user_profiles WHERE user_id = ?`
	row := r.db.QueryRowContext(ctx, query, userID)

	var p domain.Profile
	var chronotype, workStyle string
	var calendarWrite int
	err := row.Scan(
		&p.UserID,
		&p.Name,
		&p.University,
		&p.Major,
		&chronotype,
		&workStyle,
		&p.PreferredSessionMins,
		&calendarWrite,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}
	p.Chronotype = domain.Chronotype(chronotype)
	p.WorkStyle = domain.WorkStyle(workStyle)
	p.CalendarWriteEnabled = intToBool(calendarWrite)
	return &p, nil
}

func (r *SQLiteProfileRepo) Upsert(ctx context.Context, p *domain.Profile) error {
	query := `INSERT OR REPLACE INTO user_profiles (user_id, name, university, major,
		chronotype, work_style, preferred_session_mins, calendar_write_enabled)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.UserID,
		p.Name,
		p.University,
		p.Major,
		string(p.Chronotype),
		string(p.WorkStyle),
		p.PreferredSessionMins,
		boolToInt(p.CalendarWriteEnabled),
	)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}
