package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/systemstart/dataflow-kit/pkg/api"
	"github.com/systemstart/dataflow-kit/pkg/pipeline"
	"github.com/systemstart/dataflow-kit/pkg/steps"
)

var defaultExampleDir = filepath.Join("examples", "cmake-dataflow")

func newRunExampleCmd(a *app) *cobra.Command {
	var (
		rootDir      string
		exampleDir   string
		pipelineFile string
		contextFile  string
		runRuntime   bool
	)

	cmd := &cobra.Command{
		Use:   "run-example",
		Short: "Build and run the native dataflow example",
		Long: `Configure, build and install the CMake example, build the runtime package and
run the example dataflow. Steps run in order and the first failure stops the run.

With --run-dora-runtime the dataflow runtime is started directly instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exec := steps.ExecExecutor{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
			r := &pipeline.Runner{
				Deps: steps.Deps{
					Exec:     exec,
					Dataflow: steps.CLIDataflowRunner{Command: a.cfg.Dataflow, Exec: exec},
					Cargo:    a.cfg.Cargo,
				},
				Runtime: func() error {
					return exec.Run(steps.Command{Path: a.cfg.Runtime[0], Args: a.cfg.Runtime[1:]})
				},
			}

			if runRuntime {
				if err := r.Run(pipeline.ModeRuntime); err != nil {
					return &exitError{code: exitPipelineFailed, err: err}
				}
				return nil
			}

			absRoot, err := filepath.Abs(rootDir)
			if err != nil {
				return &exitError{code: exitInvalidArguments, err: fmt.Errorf("resolving root directory: %w", err)}
			}
			r.RootDir = absRoot

			r.Pipeline, err = loadPipeline(pipelineFile, filepath.Join(absRoot, exampleDir), a.cfg.CMake)
			if err != nil {
				return &exitError{code: exitConfigError, err: err}
			}

			if contextFile != "" {
				r.Vars, err = pipeline.LoadContextFile(contextFile)
				if err != nil {
					return &exitError{code: exitConfigError, err: err}
				}
			}

			if err := r.Run(pipeline.ModePipeline); err != nil {
				return &exitError{code: exitPipelineFailed, err: err}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&rootDir, "root", ".", "source root, exposed to step arguments as .RootDir")
	flags.StringVar(&exampleDir, "dir", defaultExampleDir, "example directory relative to --root")
	flags.StringVar(&pipelineFile, "pipeline", "", "pipeline file replacing the built-in pipeline")
	flags.StringVar(&contextFile, "context-file", "", "YAML file of extra step argument variables")
	flags.BoolVar(&runRuntime, "run-dora-runtime", false, "start the dataflow runtime instead of the pipeline")
	return cmd
}

func loadPipeline(pipelineFile, exampleDir, cmake string) (*api.Pipeline, error) {
	if pipelineFile == "" {
		return pipeline.DefaultPipeline(exampleDir, cmake), nil
	}
	p, err := api.LoadPipeline(pipelineFile)
	if err != nil {
		return nil, fmt.Errorf("loading pipeline: %w", err)
	}
	return p, nil
}
