package api

import "slices"

const (
	PlaceholderToken = "___name___"

	StepTypeCommand  = "command"
	StepTypePackage  = "package"
	StepTypeDataflow = "dataflow"

	DefaultBuildDir = "build"
)

// Pipeline is the pipeline file format consumed by the build runner.
type Pipeline struct {
	Context              map[string]any `yaml:"context"`
	BuildDir             string         `yaml:"buildDir"`
	UnsupportedPlatforms []string       `yaml:"unsupportedPlatforms"`
	UnsupportedReason    string         `yaml:"unsupportedReason"`
	Steps                []StepConfig   `yaml:"steps"`

	// Set by the loader, not from YAML.
	Dir      string `yaml:"-"`
	FilePath string `yaml:"-"`
}

// StepConfig defines a single step within a pipeline.
type StepConfig struct {
	Name     string          `yaml:"name"`
	Type     string          `yaml:"type"`
	Command  *CommandConfig  `yaml:"command,omitempty"`
	Package  *PackageConfig  `yaml:"package,omitempty"`
	Dataflow *DataflowConfig `yaml:"dataflow,omitempty"`
}

// CommandConfig configures a command step. Args are rendered as templates.
type CommandConfig struct {
	Executable string   `yaml:"executable"`
	Args       []string `yaml:"args"`
	Inputs     []string `yaml:"inputs"` // globs relative to the work dir
}

// PackageConfig configures a package build step.
type PackageConfig struct {
	Name string `yaml:"name"`
}

// DataflowConfig configures the final dataflow run.
type DataflowConfig struct {
	Descriptor string `yaml:"descriptor"`
}

// UnsupportedOn reports whether the pipeline must be skipped on goos.
func (p *Pipeline) UnsupportedOn(goos string) bool {
	return slices.Contains(p.UnsupportedPlatforms, goos)
}
