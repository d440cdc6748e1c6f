package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--logging-type", "text"))
	err := cmd.Execute()
	return stdout.String(), err
}

func skipWithoutBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not in PATH", name)
	}
}

func TestNew_CreatesProject(t *testing.T) {
	dir := t.TempDir()
	chdirTest(t, dir)

	out, err := runCLI(t, "new", "foo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Created new Rust operator `foo`") {
		t.Errorf("unexpected confirmation: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "foo", "src", "lib.rs")); err != nil {
		t.Errorf("expected generated source file: %v", err)
	}
}

func TestNew_CustomNodeWithPath(t *testing.T) {
	dir := t.TempDir()
	chdirTest(t, dir)

	_, err := runCLI(t, "new", "camera", "--kind", "custom-node", "--path", "nodes-camera")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "nodes-camera", "src", "main.rs")); err != nil {
		t.Errorf("expected project at --path: %v", err)
	}
}

func TestNew_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"invalid name", []string{"new", "a/b"}, exitInvalidName},
		{"unknown kind", []string{"new", "foo", "--kind", "plugin"}, exitInvalidArguments},
		{"unknown language", []string{"new", "foo", "--lang", "cobol"}, exitInvalidArguments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTest(t, t.TempDir())
			_, err := runCLI(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := exitCode(err); got != tt.want {
				t.Errorf("exitCode = %d, want %d (%v)", got, tt.want, err)
			}
		})
	}
}

func TestNew_ExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdirTest(t, dir)
	if err := os.Mkdir(filepath.Join(dir, "foo"), 0o750); err != nil {
		t.Fatal(err)
	}

	_, err := runCLI(t, "new", "foo")
	if got := exitCode(err); got != exitScaffoldFailed {
		t.Fatalf("exitCode = %d, want %d (%v)", got, exitScaffoldFailed, err)
	}
}

func TestRunExample_RuntimeMode(t *testing.T) {
	skipWithoutBinary(t, "true")
	skipWithoutBinary(t, "false")
	chdirTest(t, t.TempDir())

	t.Setenv("DFKIT_RUNNER_RUNTIME", "true")
	if _, err := runCLI(t, "run-example", "--run-dora-runtime"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("DFKIT_RUNNER_RUNTIME", "false")
	_, err := runCLI(t, "run-example", "--run-dora-runtime")
	if got := exitCode(err); got != exitPipelineFailed {
		t.Fatalf("exitCode = %d, want %d (%v)", got, exitPipelineFailed, err)
	}
}

func TestRunExample_PipelineFileStopsAtFailingStep(t *testing.T) {
	skipWithoutBinary(t, "true")
	skipWithoutBinary(t, "false")

	dir := t.TempDir()
	chdirTest(t, dir)

	marker := filepath.Join(dir, "dataflow-ran")
	content := `
steps:
  - name: configure
    type: command
    command:
      executable: "true"
  - name: build
    type: command
    command:
      executable: "false"
  - name: install
    type: command
    command:
      executable: touch
      args: ["` + marker + `"]
`
	f := filepath.Join(dir, "pipeline.yaml")
	if err := os.WriteFile(f, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := runCLI(t, "run-example", "--pipeline", f)
	if got := exitCode(err); got != exitPipelineFailed {
		t.Fatalf("exitCode = %d, want %d (%v)", got, exitPipelineFailed, err)
	}
	if !strings.Contains(err.Error(), `step "build" failed`) {
		t.Errorf("error should name the failing step: %v", err)
	}
	if _, statErr := os.Stat(marker); !os.IsNotExist(statErr) {
		t.Error("steps after the failure must not run")
	}
}

func TestRunExample_InvalidPipelineFile(t *testing.T) {
	dir := t.TempDir()
	chdirTest(t, dir)

	f := filepath.Join(dir, "pipeline.yaml")
	if err := os.WriteFile(f, []byte("steps: []\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := runCLI(t, "run-example", "--pipeline", f)
	if got := exitCode(err); got != exitConfigError {
		t.Fatalf("exitCode = %d, want %d (%v)", got, exitConfigError, err)
	}
}

func TestDotenvFeedsConfig(t *testing.T) {
	dir := t.TempDir()
	chdirTest(t, dir)
	t.Cleanup(func() { _ = os.Unsetenv("DFKIT_LOGGING_LEVEL") })

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DFKIT_LOGGING_LEVEL=bogus\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"new", "foo"})
	err := cmd.Execute()
	if got := exitCode(err); got != exitLoggingError {
		t.Fatalf("exitCode = %d, want %d (%v)", got, exitLoggingError, err)
	}
}

func TestExitCode_Default(t *testing.T) {
	if got := exitCode(errors.New("unknown flag")); got != exitInvalidArguments {
		t.Errorf("exitCode = %d, want %d", got, exitInvalidArguments)
	}
}

func TestNew_FromProjectsFile(t *testing.T) {
	dir := t.TempDir()
	chdirTest(t, dir)

	f := filepath.Join(dir, "projects.yaml")
	content := "projects:\n  - name: filter\n    kind: operator\n  - name: camera\n    kind: node\n"
	if err := os.WriteFile(f, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "new", "--from", f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "operator `filter`") || !strings.Contains(out, "custom node `camera`") {
		t.Errorf("unexpected output: %q", out)
	}

	_, err = runCLI(t, "new", "other", "--from", f)
	if got := exitCode(err); got != exitInvalidArguments {
		t.Errorf("exitCode = %d, want %d", got, exitInvalidArguments)
	}

	_, err = runCLI(t, "new")
	if got := exitCode(err); got != exitInvalidArguments {
		t.Errorf("exitCode = %d, want %d", got, exitInvalidArguments)
	}
}
