package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"controlling_oven/internal/models"
)

type RunSQLite struct {
	db *sql.DB
}

func NewRunSQLite(db *sql.DB) *RunSQLite {
	return &RunSQLite{db: db}
}

var _ RunRepo = (*RunSQLite)(nil)

// The run table holds a single snapshot row.
const (
	ovenRunRowID = 1

	upsertRunSQL = `
		INSERT INTO oven_run (id, status, program_id, program_name, current_stage, total_stages, fan_on, last_error, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status=excluded.status,
			program_id=excluded.program_id,
			program_name=excluded.program_name,
			current_stage=excluded.current_stage,
			total_stages=excluded.total_stages,
			fan_on=excluded.fan_on,
			last_error=excluded.last_error,
			updated_at=excluded.updated_at
	`

	selectRunSQL = `
		SELECT id, status, program_id, program_name, current_stage, total_stages, fan_on, last_error, updated_at
		FROM oven_run WHERE id=?
	`
)

// Save upserts the oven_run row (id always 1). UpdatedAt is persisted as UTC,
// set to now when zero.
func (r *RunSQLite) Save(ctx context.Context, run models.OvenRun) error {
	tsUTC := run.UpdatedAt
	if tsUTC.IsZero() {
		tsUTC = time.Now().UTC()
	} else {
		tsUTC = tsUTC.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertRunSQL,
		ovenRunRowID,
		run.Status,
		run.ProgramID,
		run.ProgramName,
		run.CurrentStage,
		run.TotalStages,
		run.FanOn,
		run.LastError,
		tsUTC,
	)
	return err
}

// Load fetches the snapshot row. A missing row yields a zero value, nil error.
func (r *RunSQLite) Load(ctx context.Context) (models.OvenRun, error) {
	row := r.db.QueryRowContext(ctx, selectRunSQL, ovenRunRowID)

	var run models.OvenRun
	if err := row.Scan(
		&run.ID,
		&run.Status,
		&run.ProgramID,
		&run.ProgramName,
		&run.CurrentStage,
		&run.TotalStages,
		&run.FanOn,
		&run.LastError,
		&run.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.OvenRun{}, nil // no run yet
		}
		return models.OvenRun{}, err
	}

	run.UpdatedAt = run.UpdatedAt.UTC()
	return run, nil
}
