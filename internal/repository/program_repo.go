package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"controlling_oven/internal/models"
)

type ProgramSQLite struct {
	db *sql.DB
}

func NewProgramSQLite(db *sql.DB) *ProgramSQLite {
	return &ProgramSQLite{db: db}
}

var _ ProgramRepo = (*ProgramSQLite)(nil)

const (
	insertProgramSQL = `
		INSERT INTO programs (id, name, initial_temp, cool_at_finish, stages, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	selectProgramSQL  = `SELECT id, name, initial_temp, cool_at_finish, stages, created_at FROM programs WHERE id = ?`
	selectProgramsSQL = `SELECT id, name, initial_temp, cool_at_finish, stages, created_at FROM programs ORDER BY created_at ASC`
	deleteProgramSQL  = `DELETE FROM programs WHERE id = ?`
)

// marshalStages encodes the ordered stage list as a JSON string.
func marshalStages(stages []models.ProgramStage) (string, error) {
	b, err := json.Marshal(stages)
	if err != nil {
		return "", fmt.Errorf("marshal stages: %w", err)
	}
	return string(b), nil
}

func unmarshalStages(s string) ([]models.ProgramStage, error) {
	if s == "" {
		return nil, nil
	}
	var stages []models.ProgramStage
	if err := json.Unmarshal([]byte(s), &stages); err != nil {
		return nil, fmt.Errorf("unmarshal stages: %w", err)
	}
	return stages, nil
}

// Create inserts a new program. CreatedAt is persisted as UTC; set if zero.
func (r *ProgramSQLite) Create(ctx context.Context, p models.Program) error {
	stagesJSON, err := marshalStages(p.Stages)
	if err != nil {
		return err
	}

	created := p.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	} else {
		created = created.UTC()
	}

	_, err = r.db.ExecContext(ctx, insertProgramSQL,
		p.ID,
		p.Name,
		p.InitialTemp,
		p.CoolAtFinish,
		stagesJSON,
		created,
	)
	if err != nil {
		return fmt.Errorf("insert program %q: %w", p.ID, err)
	}
	return nil
}

// Get fetches one program by id; ErrProgramNotFound when missing.
func (r *ProgramSQLite) Get(ctx context.Context, id string) (models.Program, error) {
	row := r.db.QueryRowContext(ctx, selectProgramSQL, id)

	p, err := scanProgram(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Program{}, ErrProgramNotFound
		}
		return models.Program{}, err
	}
	return p, nil
}

// List returns all stored programs, oldest first.
func (r *ProgramSQLite) List(ctx context.Context) ([]models.Program, error) {
	rows, err := r.db.QueryContext(ctx, selectProgramsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Program, 0, 16)
	for rows.Next() {
		p, err := scanProgram(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a program by id; ErrProgramNotFound when nothing matched.
func (r *ProgramSQLite) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, deleteProgramSQL, id)
	if err != nil {
		return fmt.Errorf("delete program %q: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProgramNotFound
	}
	return nil
}

// scanProgram decodes one row via the given Scan function.
func scanProgram(scan func(dest ...any) error) (models.Program, error) {
	var (
		p          models.Program
		stagesJSON string
	)
	if err := scan(
		&p.ID,
		&p.Name,
		&p.InitialTemp,
		&p.CoolAtFinish,
		&stagesJSON,
		&p.CreatedAt,
	); err != nil {
		return models.Program{}, err
	}

	stages, err := unmarshalStages(stagesJSON)
	if err != nil {
		return models.Program{}, err
	}
	p.Stages = stages
	p.CreatedAt = p.CreatedAt.UTC()
	return p, nil
}
