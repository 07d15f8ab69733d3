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

// memberColumns is the canonical SELECT column list for capacity_members.
const memberColumns = `id, iteration_id, stakeholder_id, leaves,
		availability_percent, effective_capacity_days, created_at, updated_at`

// SQLiteMemberRepo implements MemberRepo against SQLite.
type SQLiteMemberRepo struct {
	db db.DBTX
}

// NewSQLiteMemberRepo creates a new SQLiteMemberRepo.
func NewSQLiteMemberRepo(db db.DBTX) *SQLiteMemberRepo {
	return &SQLiteMemberRepo{db: db}
}

func (r *SQLiteMemberRepo) Create(ctx context.Context, m *domain.CapacityMember) error {
	query := `INSERT INTO capacity_members (id, iteration_id, stakeholder_id, leaves,
		availability_percent, effective_capacity_days, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.IterationID,
		m.StakeholderID,
		m.Leaves,
		m.AvailabilityPercent,
		m.EffectiveCapacityDays,
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting capacity member: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) GetByID(ctx context.Context, id string) (*domain.CapacityMember, error) {
	query := `SELECT ` + memberColumns + ` FROM capacity_members WHERE id = ?`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("capacity member %s: %w", id, domain.ErrNotFound)
		}
		return nil, err
	}
	return m, nil
}

func (r *SQLiteMemberRepo) ListByIteration(ctx context.Context, iterationID string) ([]*domain.CapacityMember, error) {
	query := `SELECT ` + memberColumns + ` FROM capacity_members
		WHERE iteration_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, iterationID)
	if err != nil {
		return nil, fmt.Errorf("listing capacity members: %w", err)
	}
	defer rows.Close()

	var members []*domain.CapacityMember
	for rows.Next() {
		m, err := scanMember(rows.Scan)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating capacity members: %w", err)
	}
	return members, nil
}

func (r *SQLiteMemberRepo) FindByIterationAndStakeholder(ctx context.Context, iterationID, stakeholderID string) (*domain.CapacityMember, error) {
	query := `SELECT ` + memberColumns + ` FROM capacity_members
		WHERE iteration_id = ? AND stakeholder_id = ?
		ORDER BY created_at, id LIMIT 1`
	m, err := scanMember(r.db.QueryRowContext(ctx, query, iterationID, stakeholderID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (r *SQLiteMemberRepo) Update(ctx context.Context, m *domain.CapacityMember) error {
	query := `UPDATE capacity_members SET leaves = ?, availability_percent = ?,
		effective_capacity_days = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		m.Leaves,
		m.AvailabilityPercent,
		m.EffectiveCapacityDays,
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating capacity member: %w", err)
	}
	return nil
}

func (r *SQLiteMemberRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM capacity_members WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting capacity member: %w", err)
	}
	return nil
}

func scanMember(scan func(dest ...any) error) (*domain.CapacityMember, error) {
	var m domain.CapacityMember
	var createdStr, updatedStr string

	err := scan(
		&m.ID, &m.IterationID, &m.StakeholderID, &m.Leaves,
		&m.AvailabilityPercent, &m.EffectiveCapacityDays,
		&createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning capacity member: %w", err)
	}

	var parseErr error
	if m.CreatedAt, parseErr = time.Parse(time.RFC3339, createdStr); parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	if m.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedStr); parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &m, nil
}
