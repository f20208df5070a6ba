package service

import (
	"context"

	"controlling_oven/internal/models"
	"controlling_oven/internal/oven"
	"controlling_oven/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Programs manages stored baking programs.
type Programs interface {
	Create(ctx context.Context, p ProgramParams) (models.Program, error)
	Get(ctx context.Context, id string) (models.Program, error)
	List(ctx context.Context) ([]models.Program, error)
	Delete(ctx context.Context, id string) error
}

// Baker executes a stored baking program against the oven actuators.
// Run blocks until the program completes or fails.
type Baker interface {
	Run(ctx context.Context, programID string) error
}

// Monitoring exposes the latest run snapshot.
type Monitoring interface {
	GetRun(ctx context.Context) (models.OvenRun, error)
}

// EventLog exposes the append-only run log with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.OvenEvent, error)
}

// Service aggregates all sub-services for the HTTP layer.
type Service struct {
	Programs
	Baker
	Monitoring
	EventLog
	Authorization
}

// NewService wires the repository layer and the actuator drivers into the
// concrete services.
func NewService(repos *repository.Repository, heating oven.HeatingModule, fan oven.Fan) *Service {
	return &Service{
		Programs:      NewProgramsService(repos.Programs),
		Baker:         NewBakerService(repos.Programs, repos.Runs, repos.Events, heating, fan),
		Monitoring:    NewMonitoringService(repos.Runs),
		EventLog:      NewEventLogService(repos.Events),
		Authorization: NewAuthService(repos.Auth),
	}
}
