// Package oven holds the program-execution core: it maps a declarative
// BakingProgram onto an ordered sequence of fan and heating-module commands.
package oven

import "fmt"

// HeatingModule is the command interface of the heating hardware.
// Each command may fail; success carries no return value.
type HeatingModule interface {
	Heater(s HeatingSettings) error
	ThermalCircuit(s HeatingSettings) error
	Grill(s HeatingSettings) error
}

// Fan is the circulation fan. Its commands do not fail.
type Fan interface {
	On()
	Off()
}

// Oven executes baking programs against a heating module and a fan.
// A single Oven must not run programs from multiple goroutines at once;
// there is no internal locking.
type Oven struct {
	heating HeatingModule
	fan     Fan
}

// NewOven fails fast on a nil actuator rather than deferring to first use.
func NewOven(heating HeatingModule, fan Fan) (*Oven, error) {
	if heating == nil {
		return nil, fmt.Errorf("%w: heating module is nil", ErrInvalidArgument)
	}
	if fan == nil {
		return nil, fmt.Errorf("%w: fan is nil", ErrInvalidArgument)
	}
	return &Oven{heating: heating, fan: fan}, nil
}

// RunProgram executes program synchronously: initial heat-up when
// InitialTemp is non-zero, then every stage in order, then a final fan-on
// when CoolAtFinish is set. The first heating failure aborts the whole run
// with an *OvenError; remaining stages and the finish step are skipped and
// the fan is left as last set.
func (o *Oven) RunProgram(program *BakingProgram) error {
	if program == nil {
		return fmt.Errorf("%w: program is nil", ErrInvalidArgument)
	}
	if err := o.heatUp(program.InitialTemp); err != nil {
		return err
	}
	for _, stage := range program.Stages {
		if err := o.runStage(stage); err != nil {
			return err
		}
	}
	if program.CoolAtFinish {
		o.fan.On()
	}
	return nil
}

// heatUp brings the chamber to the initial temperature with no hold time.
// The fan is not touched; a failure here aborts before any stage runs.
func (o *Oven) heatUp(initialTemp int) error {
	if initialTemp == 0 {
		return nil
	}
	if err := o.heating.Heater(HeatingSettings{Temperature: initialTemp}); err != nil {
		return newOvenError(err)
	}
	return nil
}

// runStage enables circulation, issues the stage's heating command and, for
// thermo-circulation stages, switches the fan back off once the command
// succeeded. No fan rollback happens on failure.
func (o *Oven) runStage(stage ProgramStage) error {
	o.fan.On()
	if err := o.dispatch(stage); err != nil {
		return err
	}
	if stage.Heat == HeatTypeThermoCirculation {
		o.fan.Off()
	}
	return nil
}

// dispatch routes the stage to the matching heating command. The heat-type
// set is closed, so this stays a plain switch.
func (o *Oven) dispatch(stage ProgramStage) error {
	settings := stage.settings()

	var err error
	switch stage.Heat {
	case HeatTypeHeater:
		err = o.heating.Heater(settings)
	case HeatTypeThermoCirculation:
		err = o.heating.ThermalCircuit(settings)
	case HeatTypeGrill:
		err = o.heating.Grill(settings)
	default:
		return fmt.Errorf("%w: unknown heat type %q", ErrInvalidArgument, stage.Heat)
	}
	if err != nil {
		return newOvenError(err)
	}
	return nil
}
