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

// SQLiteTeamRepo implements TeamRepo against SQLite. Team creation and its
// definitions are written by the service inside one unit of work so the
// snapshot lands atomically.
type SQLiteTeamRepo struct {
	db db.DBTX
}

// NewSQLiteTeamRepo creates a new SQLiteTeamRepo.
func NewSQLiteTeamRepo(db db.DBTX) *SQLiteTeamRepo {
	return &SQLiteTeamRepo{db: db}
}

func (r *SQLiteTeamRepo) Create(ctx context.Context, t *domain.Team) error {
	query := `INSERT INTO teams (id, name, description, source_iteration_id, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Description,
		t.SourceIterationID,
		t.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting team: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) CreateDefinition(ctx context.Context, d *domain.TeamDefinition) error {
	query := `INSERT INTO team_definitions (id, team_id, stakeholder_id,
		default_availability_percent, default_leaves)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.TeamID,
		d.StakeholderID,
		d.DefaultAvailabilityPercent,
		d.DefaultLeaves,
	)
	if err != nil {
		return fmt.Errorf("inserting team definition: %w", err)
	}
	return nil
}

func (r *SQLiteTeamRepo) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `SELECT id, name, description, source_iteration_id, created_at
		FROM teams WHERE id = ?`
	return r.getOne(ctx, query, id)
}

func (r *SQLiteTeamRepo) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `SELECT id, name, description, source_iteration_id, created_at
		FROM teams WHERE name = ? COLLATE NOCASE ORDER BY created_at LIMIT 1`
	return r.getOne(ctx, query, name)
}

func (r *SQLiteTeamRepo) getOne(ctx context.Context, query string, arg any) (*domain.Team, error) {
	var t domain.Team
	var createdStr string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&t.ID, &t.Name, &t.Description, &t.SourceIterationID, &createdStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %v: %w", arg, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning team: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &t, nil
}

func (r *SQLiteTeamRepo) List(ctx context.Context) ([]*domain.Team, error) {
	query := `SELECT id, name, description, source_iteration_id, created_at
		FROM teams ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		var t domain.Team
		var createdStr string
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.SourceIterationID, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		if t.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		teams = append(teams, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}
	return teams, nil
}

func (r *SQLiteTeamRepo) ListDefinitions(ctx context.Context, teamID string) ([]*domain.TeamDefinition, error) {
	query := `SELECT id, team_id, stakeholder_id, default_availability_percent, default_leaves
		FROM team_definitions WHERE team_id = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing team definitions: %w", err)
	}
	defer rows.Close()

	var defs []*domain.TeamDefinition
	for rows.Next() {
		var d domain.TeamDefinition
		if err := rows.Scan(&d.ID, &d.TeamID, &d.StakeholderID, &d.DefaultAvailabilityPercent, &d.DefaultLeaves); err != nil {
			return nil, fmt.Errorf("scanning team definition: %w", err)
		}
		defs = append(defs, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team definitions: %w", err)
	}
	return defs, nil
}

func (r *SQLiteTeamRepo) CountTeams(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting teams: %w", err)
	}
	return n, nil
}

func (r *SQLiteTeamRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	return nil
}
