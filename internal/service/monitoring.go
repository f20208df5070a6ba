package service

import (
	"context"
	"time"

	"controlling_oven/internal/models"
	"controlling_oven/internal/repository"
)

type MonitoringService struct {
	runRepo repository.RunRepo
}

func NewMonitoringService(runRepo repository.RunRepo) *MonitoringService {
	return &MonitoringService{runRepo: runRepo}
}

// GetRun returns the latest persisted run snapshot.
// If nothing ran yet, returns a baseline IDLE snapshot.
func (s *MonitoringService) GetRun(ctx context.Context) (models.OvenRun, error) {
	run, err := s.runRepo.Load(ctx)
	if err != nil {
		return models.OvenRun{}, err
	}
	if run.ID == 0 {
		return baselineRun(), nil
	}
	run.UpdatedAt = toUTC(run.UpdatedAt)
	return run, nil
}

// baselineRun is the snapshot reported before any program ever ran.
func baselineRun() models.OvenRun {
	return models.OvenRun{
		ID:        1, // DB schema enforces single-row snapshot with id=1
		Status:    models.RunIdle,
		UpdatedAt: time.Now().UTC(),
	}
}

// toUTC normalizes non-zero time to UTC, preserving zero values.
func toUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}
