package service

import "time"

// StageParams describes one stage of a program being created.
type StageParams struct {
	TargetTemp int    // °C
	StageTime  int    // seconds
	Heat       string // HEATER | THERMO_CIRCULATION | GRILL
}

// ProgramParams is the create payload for a baking program.
type ProgramParams struct {
	Name         string
	InitialTemp  int
	CoolAtFinish bool
	Stages       []StageParams
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "RUN_START", "HEAT_UP", "STAGE", "FAN", "RUN_COMPLETE", "RUN_FAILED"
}
