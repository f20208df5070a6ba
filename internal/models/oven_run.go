package models

import "time"

// Run statuses for the single oven-run snapshot row.
const (
	RunIdle      = "IDLE"
	RunRunning   = "RUNNING"
	RunCompleted = "COMPLETED"
	RunFailed    = "FAILED"
)

// OvenRun is the latest run snapshot of the oven.
type OvenRun struct {
	ID           int       `json:"id"`
	Status       string    `json:"status"` // IDLE | RUNNING | COMPLETED | FAILED
	ProgramID    string    `json:"program_id,omitempty"`
	ProgramName  string    `json:"program_name,omitempty"`
	CurrentStage int       `json:"current_stage"` // 1-based; 0 before the first stage command
	TotalStages  int       `json:"total_stages"`
	FanOn        bool      `json:"fan_on"`
	LastError    string    `json:"last_error,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
