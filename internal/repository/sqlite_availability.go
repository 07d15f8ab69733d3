package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintcap/internal/db"
	"github.com/alexanderramin/sprintcap/internal/domain"
)

// availabilityColumns is the canonical SELECT column list for weekly_availability.
const availabilityColumns = `id, week_id, stakeholder_id, availability_percent,
		days_present, days_total, created_at, updated_at`

// SQLiteAvailabilityRepo implements AvailabilityRepo against SQLite.
type SQLiteAvailabilityRepo struct {
	db db.DBTX
}

// NewSQLiteAvailabilityRepo creates a new SQLiteAvailabilityRepo.
func NewSQLiteAvailabilityRepo(db db.DBTX) *SQLiteAvailabilityRepo {
	return &SQLiteAvailabilityRepo{db: db}
}

func (r *SQLiteAvailabilityRepo) Create(ctx context.Context, a *domain.WeeklyAvailability) error {
	query := `INSERT INTO weekly_availability (id, week_id, stakeholder_id,
		availability_percent, days_present, days_total, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.WeekID,
		a.StakeholderID,
		a.AvailabilityPercent,
		a.DaysPresent,
		a.DaysTotal,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting weekly availability: %w", err)
	}
	return nil
}

func (r *SQLiteAvailabilityRepo) GetByWeekAndStakeholder(ctx context.Context, weekID, stakeholderID string) (*domain.WeeklyAvailability, error) {
	query := `SELECT ` + availabilityColumns + ` FROM weekly_availability
		WHERE week_id = ? AND stakeholder_id = ?`
	a, err := scanAvailability(r.db.QueryRowContext(ctx, query, weekID, stakeholderID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *SQLiteAvailabilityRepo) ListByWeek(ctx context.Context, weekID string) ([]*domain.WeeklyAvailability, error) {
	query := `SELECT ` + availabilityColumns + ` FROM weekly_availability
		WHERE week_id = ? ORDER BY created_at, id`
	return r.list(ctx, query, weekID)
}

func (r *SQLiteAvailabilityRepo) ListByIteration(ctx context.Context, iterationID string) ([]*domain.WeeklyAvailability, error) {
	query := `SELECT a.id, a.week_id, a.stakeholder_id, a.availability_percent,
		a.days_present, a.days_total, a.created_at, a.updated_at
		FROM weekly_availability a
		JOIN weeks w ON w.id = a.week_id
		WHERE w.iteration_id = ?
		ORDER BY w.week_index, a.created_at`
	return r.list(ctx, query, iterationID)
}

func (r *SQLiteAvailabilityRepo) list(ctx context.Context, query string, args ...any) ([]*domain.WeeklyAvailability, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing weekly availability: %w", err)
	}
	defer rows.Close()

	var result []*domain.WeeklyAvailability
	for rows.Next() {
		a, err := scanAvailability(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weekly availability: %w", err)
	}
	return result, nil
}

func (r *SQLiteAvailabilityRepo) Update(ctx context.Context, a *domain.WeeklyAvailability) error {
	query := `UPDATE weekly_availability SET availability_percent = ?, days_present = ?,
		days_total = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		a.AvailabilityPercent,
		a.DaysPresent,
		a.DaysTotal,
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating weekly availability: %w", err)
	}
	return nil
}

func scanAvailability(scan func(dest ...any) error) (*domain.WeeklyAvailability, error) {
	var a domain.WeeklyAvailability
	var createdStr, updatedStr string

	err := scan(
		&a.ID, &a.WeekID, &a.StakeholderID, &a.AvailabilityPercent,
		&a.DaysPresent, &a.DaysTotal,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning weekly availability: %w", err)
	}

	var parseErr error
	if a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &a, nil
}
