package models

import "time"

// Event types appended during program execution.
const (
	EventRunStart    = "RUN_START"
	EventHeatUp      = "HEAT_UP"
	EventStage       = "STAGE"
	EventFan         = "FAN"
	EventRunComplete = "RUN_COMPLETE"
	EventRunFailed   = "RUN_FAILED"
)

// OvenEvent is a single log entry.
type OvenEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // RUN_START | HEAT_UP | STAGE | FAN | RUN_COMPLETE | RUN_FAILED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
