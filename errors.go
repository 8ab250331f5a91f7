package bridge

import (
	"errors"
	"fmt"
)

// Step names the step of a bridging operation that failed.
type Step string

const (
	StepBuild    Step = "build"
	StepConnect  Step = "connect"
	StepAutofill Step = "autofill"
	StepSign     Step = "sign"
	StepSubmit   Step = "submit"
)

// ErrCoordinatorUsed is returned when Submit is called more than once on the same coordinator.
var ErrCoordinatorUsed = errors.New("coordinator already submitted a transaction")

// StageError is returned when a bridging operation stops before a terminal classification.
type StageError struct {
	Step Step
	Err  error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Step, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(step Step, err error) *StageError {
	return &StageError{Step: step, Err: err}
}
