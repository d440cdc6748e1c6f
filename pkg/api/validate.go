package api

import (
	"fmt"
	"path/filepath"
)

var validStepTypes = map[string]bool{
	StepTypeCommand:  true,
	StepTypePackage:  true,
	StepTypeDataflow: true,
}

// Validate checks the pipeline configuration for errors.
func (p *Pipeline) Validate() error {
	if len(p.Steps) == 0 {
		return fmt.Errorf("pipeline has no steps")
	}
	if filepath.IsAbs(p.BuildDir) {
		return fmt.Errorf("buildDir %q must be relative to the pipeline directory", p.BuildDir)
	}

	names := make(map[string]int)

	for i, step := range p.Steps {
		if step.Name == "" {
			return fmt.Errorf("step %d: name is required", i)
		}
		if prev, exists := names[step.Name]; exists {
			return fmt.Errorf("step %d: duplicate step name %q (first defined at step %d)", i, step.Name, prev)
		}
		names[step.Name] = i

		if !validStepTypes[step.Type] {
			return fmt.Errorf("step %q: unknown type %q", step.Name, step.Type)
		}

		if err := validateStepConfig(step); err != nil {
			return fmt.Errorf("step %q: %w", step.Name, err)
		}

		if step.Type == StepTypeDataflow && i != len(p.Steps)-1 {
			return fmt.Errorf("step %q: dataflow step must be the last step", step.Name)
		}
	}

	return nil
}

func validateStepConfig(step StepConfig) error {
	switch step.Type {
	case StepTypeCommand:
		if step.Command == nil {
			return fmt.Errorf("command config is required")
		}
		if step.Command.Executable == "" {
			return fmt.Errorf("command.executable is required")
		}
	case StepTypePackage:
		if step.Package == nil {
			return fmt.Errorf("package config is required")
		}
		if step.Package.Name == "" {
			return fmt.Errorf("package.name is required")
		}
	case StepTypeDataflow:
		if step.Dataflow == nil {
			return fmt.Errorf("dataflow config is required")
		}
		if step.Dataflow.Descriptor == "" {
			return fmt.Errorf("dataflow.descriptor is required")
		}
	}
	return nil
}
