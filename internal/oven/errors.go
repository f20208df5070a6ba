package oven

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports a nil dependency, a nil program or an unknown
// heat type. It is returned synchronously, before any actuator interaction
// for the offending input.
var ErrInvalidArgument = errors.New("invalid argument")

// OvenError is the single error kind surfaced for a failed run. Any heating
// command failure is wrapped into it; which stage or mode failed is not
// distinguished, but the collaborator cause stays reachable via Unwrap.
type OvenError struct {
	cause error
}

func (e *OvenError) Error() string {
	return fmt.Sprintf("oven run aborted: %v", e.cause)
}

func (e *OvenError) Unwrap() error {
	return e.cause
}

func newOvenError(cause error) *OvenError {
	return &OvenError{cause: cause}
}
