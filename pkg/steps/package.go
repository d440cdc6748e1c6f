package steps

import (
	"log/slog"

	"github.com/systemstart/dataflow-kit/pkg/api"
)

const defaultCargo = "cargo"

type packageStep struct {
	name     string
	cfg      *api.PackageConfig
	cargo    string
	executor Executor
}

// NewPackageStep creates a step that builds one package with cargo.
func NewPackageStep(name string, cfg *api.PackageConfig, cargo string, executor Executor) Step {
	if cargo == "" {
		cargo = defaultCargo
	}
	return &packageStep{name: name, cfg: cfg, cargo: cargo, executor: executor}
}

func (s *packageStep) Name() string { return s.name }

func (s *packageStep) Run(ctx StepContext) error {
	cmd := Command{
		Path: s.cargo,
		Args: []string{"build", "--package", s.cfg.Name},
		Dir:  ctx.WorkDir,
	}
	slog.Info("building package", "step", s.name, "package", s.cfg.Name, "cargo", s.cargo)
	return s.executor.Run(cmd)
}
