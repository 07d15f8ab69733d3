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

// iterationColumns is the canonical SELECT column list for iterations.
const iterationColumns = `id, project_id, name, start_date, end_date,
		weeks_count, working_days, committed_points, created_at, updated_at`

// SQLiteIterationRepo implements IterationRepo against SQLite.
type SQLiteIterationRepo struct {
	db db.DBTX
}

// NewSQLiteIterationRepo creates a new SQLiteIterationRepo.
func NewSQLiteIterationRepo(db db.DBTX) *SQLiteIterationRepo {
	return &SQLiteIterationRepo{db: db}
}

func (r *SQLiteIterationRepo) Create(ctx context.Context, it *domain.Iteration) error {
	query := `INSERT INTO iterations (id, project_id, name, start_date, end_date,
		weeks_count, working_days, committed_points, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.ProjectID,
		it.Name,
		it.StartDate.Format(dateLayout),
		it.EndDate.Format(dateLayout),
		nullableIntToValue(it.WeeksCount),
		it.WorkingDays,
		it.CommittedPoints,
		it.CreatedAt.Format(time.RFC3339),
		it.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting iteration: %w", err)
	}
	return nil
}

func (r *SQLiteIterationRepo) GetByID(ctx context.Context, id string) (*domain.Iteration, error) {
	query := `SELECT ` + iterationColumns + ` FROM iterations WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	it, err := scanIteration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("iteration %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return it, nil
}

func (r *SQLiteIterationRepo) List(ctx context.Context) ([]*domain.Iteration, error) {
	query := `SELECT ` + iterationColumns + ` FROM iterations ORDER BY start_date, created_at`
	return r.list(ctx, query)
}

func (r *SQLiteIterationRepo) ListByProject(ctx context.Context, projectID string) ([]*domain.Iteration, error) {
	query := `SELECT ` + iterationColumns + ` FROM iterations WHERE project_id = ? ORDER BY start_date, created_at`
	return r.list(ctx, query, projectID)
}

func (r *SQLiteIterationRepo) list(ctx context.Context, query string, args ...any) ([]*domain.Iteration, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing iterations: %w", err)
	}
	defer rows.Close()

	var iterations []*domain.Iteration
	for rows.Next() {
		it, err := scanIteration(rows.Scan)
		if err != nil {
			return nil, err
		}
		iterations = append(iterations, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating iterations: %w", err)
	}
	return iterations, nil
}

func (r *SQLiteIterationRepo) Update(ctx context.Context, it *domain.Iteration) error {
	query := `UPDATE iterations SET project_id = ?, name = ?, start_date = ?, end_date = ?,
		weeks_count = ?, working_days = ?, committed_points = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		it.ProjectID,
		it.Name,
		it.StartDate.Format(dateLayout),
		it.EndDate.Format(dateLayout),
		nullableIntToValue(it.WeeksCount),
		it.WorkingDays,
		it.CommittedPoints,
		it.UpdatedAt.Format(time.RFC3339),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating iteration: %w", err)
	}
	return nil
}

func (r *SQLiteIterationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM iterations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting iteration: %w", err)
	}
	return nil
}

func scanIteration(scan func(dest ...any) error) (*domain.Iteration, error) {
	var it domain.Iteration
	var startStr, endStr, createdStr, updatedStr string
	var weeksCount sql.NullInt64

	err := scan(
		&it.ID, &it.ProjectID, &it.Name,
		&startStr, &endStr,
		&weeksCount, &it.WorkingDays, &it.CommittedPoints,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning iteration: %w", err)
	}

	it.WeeksCount = parseNullableInt(weeksCount)

	var parseErr error
	if it.StartDate, parseErr = time.Parse(dateLayout, startStr); parseErr != nil {
		return nil, fmt.Errorf("parsing start_date: %w", parseErr)
	}
	if it.EndDate, parseErr = time.Parse(dateLayout, endStr); parseErr != nil {
		return nil, fmt.Errorf("parsing end_date: %w", parseErr)
	}
	if it.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if it.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &it, nil
}
