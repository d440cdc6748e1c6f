package steps

// StepContext provides the runtime context for a step.
type StepContext struct {
	WorkDir      string
	TemplateData map[string]any
}

// Step is the interface all pipeline steps implement.
type Step interface {
	Name() string
	Run(ctx StepContext) error
}
