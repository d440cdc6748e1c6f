package pipeline

import "github.com/systemstart/dataflow-kit/pkg/api"

const (
	DefaultDescriptor = "dataflow.yml"
	DefaultPackage    = "dora-runtime"
	defaultCMake      = "cmake"
)

// DefaultPipeline is the native example pipeline: configure, build and
// install with CMake, build the runtime package, then run the dataflow.
// dir becomes the pipeline directory. An empty cmake means "cmake" on PATH.
func DefaultPipeline(dir, cmake string) *api.Pipeline {
	if cmake == "" {
		cmake = defaultCMake
	}

	return &api.Pipeline{
		Dir:                  dir,
		BuildDir:             api.DefaultBuildDir,
		UnsupportedPlatforms: []string{"windows"},
		UnsupportedReason:    "the C++ example does not work on Windows currently because of a linker error",
		Steps: []api.StepConfig{
			{
				Name: "configure",
				Type: api.StepTypeCommand,
				Command: &api.CommandConfig{
					Executable: cmake,
					Args:       []string{"-DDORA_ROOT_DIR={{ .RootDir }}", "-B", "{{ .BuildDir }}", "."},
					Inputs:     []string{"CMakeLists.txt"},
				},
			},
			{
				Name: "build",
				Type: api.StepTypeCommand,
				Command: &api.CommandConfig{
					Executable: cmake,
					Args:       []string{"--build", "{{ .BuildDir }}"},
				},
			},
			{
				Name: "install",
				Type: api.StepTypeCommand,
				Command: &api.CommandConfig{
					Executable: cmake,
					Args:       []string{"--install", "{{ .BuildDir }}"},
				},
			},
			{
				Name:    "build-runtime",
				Type:    api.StepTypePackage,
				Package: &api.PackageConfig{Name: DefaultPackage},
			},
			{
				Name:     "run-dataflow",
				Type:     api.StepTypeDataflow,
				Dataflow: &api.DataflowConfig{Descriptor: DefaultDescriptor},
			},
		},
	}
}
