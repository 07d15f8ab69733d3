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

// SQLiteStakeholderRepo implements StakeholderRepo against SQLite.
type SQLiteStakeholderRepo struct {
	db db.DBTX
}

// NewSQLiteStakeholderRepo creates a new SQLiteStakeholderRepo.
func NewSQLiteStakeholderRepo(db db.DBTX) *SQLiteStakeholderRepo {
	return &SQLiteStakeholderRepo{db: db}
}

func (r *SQLiteStakeholderRepo) Create(ctx context.Context, s *domain.Stakeholder) error {
	query := `INSERT INTO stakeholders (id, name, role, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Role, s.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting stakeholder: %w", err)
	}
	return nil
}

func (r *SQLiteStakeholderRepo) GetByID(ctx context.Context, id string) (*domain.Stakeholder, error) {
	var s domain.Stakeholder
	var createdStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, role, created_at FROM stakeholders WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name, &s.Role, &createdStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("stakeholder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning stakeholder: %w", err)
	}
	if s.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &s, nil
}

func (r *SQLiteStakeholderRepo) List(ctx context.Context) ([]*domain.Stakeholder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, role, created_at FROM stakeholders ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing stakeholders: %w", err)
	}
	defer rows.Close()

	var stakeholders []*domain.Stakeholder
	for rows.Next() {
		var s domain.Stakeholder
		var createdStr string
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning stakeholder row: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		stakeholders = append(stakeholders, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stakeholders: %w", err)
	}
	return stakeholders, nil
}
