// Package drivers provides software stand-ins for the oven's actuators.
// Commands apply instantly; no real time passes (the control core does not
// model elapsed time either).
package drivers

import (
	"fmt"
	"sync"

	"controlling_oven/internal/oven"
)

// DefaultMaxTempC is the thermal cutout used when the config does not set one.
const DefaultMaxTempC = 300

// HeatingError is reported when a command cannot satisfy the requested
// settings. It is the collaborator-side failure the oven core wraps.
type HeatingError struct {
	Command  string
	Settings oven.HeatingSettings
	Reason   string
}

func (e *HeatingError) Error() string {
	return fmt.Sprintf("heating %s at %d°C/%ds: %s",
		e.Command, e.Settings.Temperature, e.Settings.Time, e.Reason)
}

// SimHeatingModule simulates the three-command heating hardware. It enforces
// a max safe temperature and rejects negative targets; accepted commands are
// recorded for telemetry and tests.
type SimHeatingModule struct {
	mu       sync.Mutex
	maxTempC int

	lastCommand  string
	lastSettings oven.HeatingSettings
	applied      int
}

func NewSimHeatingModule(maxTempC int) *SimHeatingModule {
	if maxTempC <= 0 {
		maxTempC = DefaultMaxTempC
	}
	return &SimHeatingModule{maxTempC: maxTempC}
}

// Ensure the oven's command interface is implemented at compile time.
var _ oven.HeatingModule = (*SimHeatingModule)(nil)

func (m *SimHeatingModule) Heater(s oven.HeatingSettings) error {
	return m.apply("heater", s)
}

func (m *SimHeatingModule) ThermalCircuit(s oven.HeatingSettings) error {
	return m.apply("thermal_circuit", s)
}

func (m *SimHeatingModule) Grill(s oven.HeatingSettings) error {
	return m.apply("grill", s)
}

func (m *SimHeatingModule) apply(command string, s oven.HeatingSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.Temperature < 0 {
		return &HeatingError{Command: command, Settings: s, Reason: "negative target temperature"}
	}
	if s.Temperature > m.maxTempC {
		return &HeatingError{
			Command:  command,
			Settings: s,
			Reason:   fmt.Sprintf("target above max safe %d°C", m.maxTempC),
		}
	}

	m.lastCommand = command
	m.lastSettings = s
	m.applied++
	return nil
}

// LastCommand returns the most recently accepted command name.
func (m *SimHeatingModule) LastCommand() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastCommand
}

// LastSettings returns the settings of the most recently accepted command.
func (m *SimHeatingModule) LastSettings() oven.HeatingSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastSettings
}

// Applied returns how many commands were accepted.
func (m *SimHeatingModule) Applied() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.applied
}
