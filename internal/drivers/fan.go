package drivers

import (
	"sync"

	"controlling_oven/internal/oven"
)

// SimFan tracks the circulation fan state in memory. Fan commands never fail.
type SimFan struct {
	mu          sync.Mutex
	on          bool
	transitions int
}

func NewSimFan() *SimFan {
	return &SimFan{}
}

var _ oven.Fan = (*SimFan)(nil)

func (f *SimFan) On() {
	f.set(true)
}

func (f *SimFan) Off() {
	f.set(false)
}

func (f *SimFan) set(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.on != on {
		f.transitions++
	}
	f.on = on
}

// IsOn reports the current fan state.
func (f *SimFan) IsOn() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.on
}

// Transitions counts on/off state changes since construction.
func (f *SimFan) Transitions() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.transitions
}
