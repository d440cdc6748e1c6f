package main

import (
	"errors"
	"fmt"
	"os"
)

var version = "dev"

const (
	_ = iota
	exitInvalidArguments
	exitDotenvError
	exitConfigError
	exitLoggingError
	exitInvalidName
	exitScaffoldFailed
	exitPipelineFailed
)

// exitError carries the process exit code out of a RunE handler.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitInvalidArguments
}
