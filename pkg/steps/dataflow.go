package steps

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/systemstart/dataflow-kit/pkg/api"
)

// DataflowRunner hands a dataflow descriptor to the dataflow service.
type DataflowRunner interface {
	RunDataflow(descriptor, workDir string) error
}

// CLIDataflowRunner runs dataflows through an external command line. The
// descriptor path is appended to Command.
type CLIDataflowRunner struct {
	Command []string
	Exec    Executor
}

func (r CLIDataflowRunner) RunDataflow(descriptor, workDir string) error {
	if len(r.Command) == 0 {
		return fmt.Errorf("no dataflow command configured")
	}
	args := append(slices.Clone(r.Command[1:]), descriptor)
	return r.Exec.Run(Command{Path: r.Command[0], Args: args, Dir: workDir})
}

type dataflowStep struct {
	name   string
	cfg    *api.DataflowConfig
	runner DataflowRunner
}

// NewDataflowStep creates the step that runs the finished dataflow.
func NewDataflowStep(name string, cfg *api.DataflowConfig, runner DataflowRunner) Step {
	return &dataflowStep{name: name, cfg: cfg, runner: runner}
}

func (s *dataflowStep) Name() string { return s.name }

func (s *dataflowStep) Run(ctx StepContext) error {
	slog.Info("running dataflow", "step", s.name, "descriptor", s.cfg.Descriptor)
	return s.runner.RunDataflow(s.cfg.Descriptor, ctx.WorkDir)
}
