package pipeline

import "fmt"

// StepError names the step a run failed in
type StepError struct {
	StepID string
	Cause  error
}

// Error implements the error interface
func (e *StepError) Error() string {
	return fmt.Sprintf("step %s failed: %v", e.StepID, e.Cause)
}

// Unwrap returns the underlying error
func (e *StepError) Unwrap() error {
	return e.Cause
}
