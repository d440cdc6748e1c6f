package steps

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Command is one external process invocation.
type Command struct {
	Path string
	Args []string
	Dir  string
	Env  []string // appended to the inherited environment
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// Executor runs external processes and reports whether they succeeded.
type Executor interface {
	Run(cmd Command) error
}

// ExecExecutor runs commands with os/exec. Nil streams inherit the
// corresponding stream of the current process.
type ExecExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run starts cmd and waits for it to exit. A missing binary and a non-zero
// exit status are both errors.
func (e ExecExecutor) Run(c Command) error {
	path, err := exec.LookPath(c.Path)
	if err != nil {
		return fmt.Errorf("%s binary not found in PATH: %w", c.Path, err)
	}

	cmd := exec.Command(path, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	cmd.Stdin = orReader(e.Stdin, os.Stdin)
	cmd.Stdout = orWriter(e.Stdout, os.Stdout)
	cmd.Stderr = orWriter(e.Stderr, os.Stderr)

	slog.Debug("spawning process", "command", c.String(), "dir", c.Dir)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %q: %w", c.String(), err)
	}
	return nil
}

func orReader(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func orWriter(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
