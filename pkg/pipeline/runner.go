package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/systemstart/dataflow-kit/pkg/api"
	"github.com/systemstart/dataflow-kit/pkg/steps"
)

// Mode selects what Runner.Run does.
type Mode int

const (
	// ModePipeline runs the configured steps in order.
	ModePipeline Mode = iota
	// ModeRuntime hands control to the dataflow runtime and runs no steps.
	ModeRuntime
)

// RuntimeFunc is the dataflow runtime entry point used by ModeRuntime.
type RuntimeFunc func() error

// Runner executes a pipeline. Every process it spawns gets the pipeline
// directory as its working directory; the runner never changes the working
// directory of the current process, so independent runners do not interfere.
type Runner struct {
	Pipeline *api.Pipeline
	RootDir  string
	Vars     map[string]any // extra template variables, overridden by the pipeline context
	Deps     steps.Deps
	Runtime  RuntimeFunc
	Platform string // defaults to runtime.GOOS
}

// Run executes the runner in the given mode. In pipeline mode the first
// failing step stops the run and is reported as a *StepError.
func (r *Runner) Run(mode Mode) error {
	if mode == ModeRuntime {
		if r.Runtime == nil {
			return errors.New("no dataflow runtime entry point configured")
		}
		slog.Info("running dataflow runtime")
		return r.Runtime()
	}

	p := r.Pipeline
	if p == nil {
		return errors.New("no pipeline configured")
	}

	platform := r.Platform
	if platform == "" {
		platform = runtime.GOOS
	}
	if p.UnsupportedOn(platform) {
		slog.Error("skipping pipeline on unsupported platform", "platform", platform, "reason", p.UnsupportedReason)
		return nil
	}

	buildDir := p.BuildDir
	if buildDir == "" {
		buildDir = api.DefaultBuildDir
	}
	if err := os.MkdirAll(filepath.Join(p.Dir, buildDir), 0o750); err != nil {
		return fmt.Errorf("creating build directory: %w", err)
	}

	builtins := map[string]any{
		"RootDir":  r.RootDir,
		"WorkDir":  p.Dir,
		"BuildDir": buildDir,
	}
	sctx := steps.StepContext{
		WorkDir:      p.Dir,
		TemplateData: MergeContext(MergeContext(builtins, r.Vars), p.Context),
	}

	for _, cfg := range p.Steps {
		slog.Info("running step", "pipeline", p.FilePath, "step", cfg.Name, "type", cfg.Type)
		if err := r.runStep(cfg, sctx); err != nil {
			return err
		}
	}

	slog.Info("pipeline succeeded", "dir", p.Dir)
	return nil
}

func (r *Runner) runStep(cfg api.StepConfig, sctx steps.StepContext) error {
	step, err := steps.NewStep(cfg, r.Deps)
	if err != nil {
		return &StepError{Step: cfg.Name, Err: fmt.Errorf("creating step: %w", err)}
	}
	if err := step.Run(sctx); err != nil {
		return &StepError{Step: cfg.Name, Err: err}
	}
	return nil
}
