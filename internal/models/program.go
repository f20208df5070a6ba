package models

import "time"

// ProgramStage is the stored form of one baking-program phase.
type ProgramStage struct {
	TargetTemp int    `json:"target_temp"` // °C
	StageTime  int    `json:"stage_time"`  // seconds
	Heat       string `json:"heat"`        // HEATER | THERMO_CIRCULATION | GRILL
}

// Program is a stored baking program. Stage order is execution order.
type Program struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	InitialTemp  int            `json:"initial_temp"` // °C; 0 skips initial heat-up
	CoolAtFinish bool           `json:"cool_at_finish"`
	Stages       []ProgramStage `json:"stages"`
	CreatedAt    time.Time      `json:"created_at"`
}
