package steps

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/systemstart/dataflow-kit/pkg/api"
)

type commandStep struct {
	name     string
	cfg      *api.CommandConfig
	executor Executor
}

// NewCommandStep creates a step that runs one external process.
func NewCommandStep(name string, cfg *api.CommandConfig, executor Executor) Step {
	return &commandStep{name: name, cfg: cfg, executor: executor}
}

func (s *commandStep) Name() string { return s.name }

func (s *commandStep) Run(ctx StepContext) error {
	if err := checkInputs(os.DirFS(ctx.WorkDir), s.cfg.Inputs); err != nil {
		return fmt.Errorf("checking inputs: %w", err)
	}

	args, err := renderArgs(s.name, s.cfg.Args, ctx.TemplateData)
	if err != nil {
		return err
	}

	cmd := Command{Path: s.cfg.Executable, Args: args, Dir: ctx.WorkDir}
	slog.Info("running command", "step", s.name, "command", cmd.String(), "dir", ctx.WorkDir)

	return s.executor.Run(cmd)
}
