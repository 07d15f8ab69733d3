package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/sprintcap/internal/db"
	"github.com/alexanderramin/sprintcap/internal/domain"
)

// SQLiteWeekRepo implements WeekRepo against SQLite.
type SQLiteWeekRepo struct {
	db db.DBTX
}

// NewSQLiteWeekRepo creates a new SQLiteWeekRepo.
func NewSQLiteWeekRepo(db db.DBTX) *SQLiteWeekRepo {
	return &SQLiteWeekRepo{db: db}
}

func (r *SQLiteWeekRepo) Create(ctx context.Context, w *domain.Week) error {
	query := `INSERT INTO weeks (id, iteration_id, week_index, week_start, week_end, days_total)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.IterationID,
		w.WeekIndex,
		w.WeekStart.Format(dateLayout),
		w.WeekEnd.Format(dateLayout),
		w.DaysTotal,
	)
	if err != nil {
		return fmt.Errorf("inserting week: %w", err)
	}
	return nil
}

func (r *SQLiteWeekRepo) ListByIteration(ctx context.Context, iterationID string) ([]*domain.Week, error) {
	query := `SELECT id, iteration_id, week_index, week_start, week_end, days_total
		FROM weeks WHERE iteration_id = ? ORDER BY week_index`
	rows, err := r.db.QueryContext(ctx, query, iterationID)
	if err != nil {
		return nil, fmt.Errorf("listing weeks: %w", err)
	}
	defer rows.Close()

	var weeks []*domain.Week
	for rows.Next() {
		var w domain.Week
		var startStr, endStr string
		if err := rows.Scan(&w.ID, &w.IterationID, &w.WeekIndex, &startStr, &endStr, &w.DaysTotal); err != nil {
			return nil, fmt.Errorf("scanning week: %w", err)
		}
		if w.WeekStart, err = time.Parse(dateLayout, startStr); err != nil {
			return nil, fmt.Errorf("parsing week_start: %w", err)
		}
		if w.WeekEnd, err = time.Parse(dateLayout, endStr); err != nil {
			return nil, fmt.Errorf("parsing week_end: %w", err)
		}
		weeks = append(weeks, &w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating weeks: %w", err)
	}
	return weeks, nil
}

func (r *SQLiteWeekRepo) Update(ctx context.Context, w *domain.Week) error {
	query := `UPDATE weeks SET week_start = ?, week_end = ?, days_total = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		w.WeekStart.Format(dateLayout),
		w.WeekEnd.Format(dateLayout),
		w.DaysTotal,
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating week: %w", err)
	}
	return nil
}

func (r *SQLiteWeekRepo) DeleteAboveIndex(ctx context.Context, iterationID string, maxIndex int) error {
	query := `DELETE FROM weeks WHERE iteration_id = ? AND week_index > ?`
	if _, err := r.db.ExecContext(ctx, query, iterationID, maxIndex); err != nil {
		return fmt.Errorf("deleting trailing weeks: %w", err)
	}
	return nil
}
