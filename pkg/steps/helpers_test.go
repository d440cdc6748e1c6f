package steps

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile writes content to a file in dir, failing the test on error.
func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

// recordingExecutor records every command and fails those whose path is in fail.
type recordingExecutor struct {
	commands []Command
	fail     map[string]bool
}

func (r *recordingExecutor) Run(cmd Command) error {
	r.commands = append(r.commands, cmd)
	if r.fail[cmd.Path] {
		return errors.New("exit status 1")
	}
	return nil
}

type recordingDataflowRunner struct {
	descriptors []string
	dirs        []string
	err         error
}

func (r *recordingDataflowRunner) RunDataflow(descriptor, workDir string) error {
	r.descriptors = append(r.descriptors, descriptor)
	r.dirs = append(r.dirs, workDir)
	return r.err
}
