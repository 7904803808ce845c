// internal/errors/errors.go
package appErrors

import "fmt"

// ErrModelCall is a sentinel error for a failed LLM call
type ErrModelCall struct {
	Model string
	Err   error
}

func (e *ErrModelCall) Error() string {
	return fmt.Sprintf("model %s call failed: %v", e.Model, e.Err)
}

func (e *ErrModelCall) Unwrap() error {
	return e.Err
}

// Helper constructor
func NewModelCall(model string, err error) error {
	return &ErrModelCall{Model: model, Err: err}
}
