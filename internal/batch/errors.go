package batch

import (
	"errors"
	"fmt"
)

var ErrLoadFailed = errors.New("failed to load document")

// DocumentError records which document failed and at which step.
type DocumentError struct {
	Source string
	Op     string
	Err    error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

// Is matches ErrLoadFailed for load failures in addition to the wrapped cause.
func (e *DocumentError) Is(target error) bool {
	return target == ErrLoadFailed && e.Op == OpLoad
}

const OpLoad = "load"

func loadError(source string, err error) error {
	return &DocumentError{Source: source, Op: OpLoad, Err: err}
}
