package scaffold

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName = errors.New("invalid project name")
	ErrUnknownKind = errors.New("unknown project kind")
)

// IOError records which filesystem operation failed and on which path.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to %s `%s`: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
