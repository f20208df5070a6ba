package oven

// HeatType selects which heating-module command a stage issues.
type HeatType string

const (
	HeatTypeHeater            HeatType = "HEATER"
	HeatTypeThermoCirculation HeatType = "THERMO_CIRCULATION"
	HeatTypeGrill             HeatType = "GRILL"
)

// Valid reports whether t is one of the known heat types.
func (t HeatType) Valid() bool {
	switch t {
	case HeatTypeHeater, HeatTypeThermoCirculation, HeatTypeGrill:
		return true
	}
	return false
}

// HeatingSettings is the payload handed to the heating module for one command.
// Time 0 means "reach temperature, no hold".
type HeatingSettings struct {
	Temperature int // °C
	Time        int // seconds
}

// ProgramStage is one phase of a baking program.
type ProgramStage struct {
	TargetTemp int // °C
	StageTime  int // seconds
	Heat       HeatType
}

// settings builds the heating payload for this stage.
func (s ProgramStage) settings() HeatingSettings {
	return HeatingSettings{Temperature: s.TargetTemp, Time: s.StageTime}
}

// BakingProgram describes a full run: optional initial heat-up, stages in
// execution order, and an optional cooling step after the last stage.
// The oven never mutates a program; it stays caller-owned.
type BakingProgram struct {
	InitialTemp  int // °C; 0 skips the initial heat-up
	Stages       []ProgramStage
	CoolAtFinish bool
}
