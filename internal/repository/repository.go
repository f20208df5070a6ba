package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"controlling_oven/internal/models"
)

// ErrProgramNotFound is returned when a baking program id does not exist.
var ErrProgramNotFound = errors.New("baking program not found")

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

// ProgramRepo stores baking programs; stage order is preserved.
type ProgramRepo interface {
	Create(ctx context.Context, p models.Program) error
	Get(ctx context.Context, id string) (models.Program, error)
	List(ctx context.Context) ([]models.Program, error)
	Delete(ctx context.Context, id string) error
}

// RunRepo keeps the single latest oven-run snapshot.
type RunRepo interface {
	Save(ctx context.Context, r models.OvenRun) error
	Load(ctx context.Context) (models.OvenRun, error)
}

// EventRepo is the append-only run log with filtered access.
type EventRepo interface {
	Append(ctx context.Context, e models.OvenEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.OvenEvent, error)
}

type Repository struct {
	Programs ProgramRepo
	Runs     RunRepo
	Events   EventRepo
	Auth     Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Programs: NewProgramSQLite(db),
		Runs:     NewRunSQLite(db),
		Events:   NewEventSQLite(db),
		Auth:     NewUserRepository(db),
	}
}
