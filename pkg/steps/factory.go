package steps

import (
	"fmt"

	"github.com/systemstart/dataflow-kit/pkg/api"
)

// Deps are the external collaborators steps delegate to.
type Deps struct {
	Exec     Executor
	Dataflow DataflowRunner
	Cargo    string
}

// NewStep creates a Step implementation from a StepConfig.
func NewStep(cfg api.StepConfig, deps Deps) (Step, error) {
	switch cfg.Type {
	case api.StepTypeCommand:
		return NewCommandStep(cfg.Name, cfg.Command, deps.Exec), nil
	case api.StepTypePackage:
		return NewPackageStep(cfg.Name, cfg.Package, deps.Cargo, deps.Exec), nil
	case api.StepTypeDataflow:
		return NewDataflowStep(cfg.Name, cfg.Dataflow, deps.Dataflow), nil
	default:
		return nil, fmt.Errorf("unknown step type: %s", cfg.Type)
	}
}
