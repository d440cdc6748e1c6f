package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"github.com/systemstart/dataflow-kit/pkg/api"
	"github.com/systemstart/dataflow-kit/pkg/scaffold"
)

func newNewCmd() *cobra.Command {
	var (
		kind string
		lang string
		path string
		from string
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new operator or custom node project",
		Long: `Create a new project from the built-in templates. The project is created in
a directory named after the project unless --path is given.

Examples:
  dfkit new my-operator
  dfkit new camera --kind custom-node --path nodes/camera
  dfkit new --from projects.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if from != "" {
				if len(args) > 0 {
					return &exitError{code: exitInvalidArguments, err: errors.New("a project name cannot be combined with --from")}
				}
				return createFromFile(from, cmd.OutOrStdout())
			}
			if len(args) == 0 {
				return &exitError{code: exitInvalidArguments, err: errors.New("a project name or --from is required")}
			}

			k, err := api.ParseProjectKind(kind)
			if err != nil {
				return &exitError{code: exitInvalidArguments, err: err}
			}
			l, err := api.ParseLanguage(lang)
			if err != nil {
				return &exitError{code: exitInvalidArguments, err: err}
			}

			req := scaffold.Request{Kind: k, Language: l, Name: args[0], Destination: path}
			if _, err := scaffold.Create(req, cmd.OutOrStdout()); err != nil {
				return scaffoldError(err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", string(api.KindOperator), "project kind: operator or custom-node")
	cmd.Flags().StringVar(&lang, "lang", string(api.LanguageRust), "project language")
	cmd.Flags().StringVar(&path, "path", "", "destination directory (default: ./<name>)")
	cmd.Flags().StringVar(&from, "from", "", "YAML file listing several projects to create")
	return cmd
}

func createFromFile(filename string, out io.Writer) error {
	pf, err := api.LoadProjects(filename)
	if err != nil {
		return &exitError{code: exitConfigError, err: err}
	}
	if _, err := scaffold.CreateAll(pf, out); err != nil {
		return scaffoldError(err)
	}
	return nil
}

func scaffoldError(err error) error {
	if errors.Is(err, scaffold.ErrInvalidName) {
		return &exitError{code: exitInvalidName, err: err}
	}
	return &exitError{code: exitScaffoldFailed, err: err}
}
