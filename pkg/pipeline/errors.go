package pipeline

import (
	"errors"
	"fmt"
)

var ErrStepFailed = errors.New("pipeline step failed")

// StepError identifies the step that stopped the pipeline.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() []error { return []error{ErrStepFailed, e.Err} }
