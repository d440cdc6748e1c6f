package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/systemstart/dataflow-kit/pkg/config"
	"github.com/systemstart/dataflow-kit/pkg/logging"
)

// app carries the settings resolved before any subcommand runs.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "dfkit",
		Short:             "Scaffold dataflow projects and run the native dataflow example",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("config-dir", ".", "directory searched for dfkit.yaml")
	flags.String("logging-type", "tint", "logging type: json, text or tint")
	flags.String("log-level", "info", "logging level: debug, info, warn, error")

	root.AddCommand(newNewCmd(), newRunExampleCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	envLoaded, err := includeEnv()
	if err != nil {
		return &exitError{code: exitDotenvError, err: err}
	}

	configDir, err := cmd.Flags().GetString("config-dir")
	if err != nil {
		return &exitError{code: exitInvalidArguments, err: err}
	}
	v, err := config.New(configDir)
	if err != nil {
		return &exitError{code: exitConfigError, err: err}
	}
	if err := v.BindPFlag(config.KeyLoggingType, cmd.Flags().Lookup("logging-type")); err != nil {
		return &exitError{code: exitConfigError, err: err}
	}
	if err := v.BindPFlag(config.KeyLogLevel, cmd.Flags().Lookup("log-level")); err != nil {
		return &exitError{code: exitConfigError, err: err}
	}

	a.cfg, err = config.Resolve(v)
	if err != nil {
		return &exitError{code: exitConfigError, err: err}
	}

	if err := logging.Initialize(cmd.ErrOrStderr(), a.cfg.LoggingType, a.cfg.LogLevel); err != nil {
		return &exitError{code: exitLoggingError, err: err}
	}

	if envLoaded {
		slog.Debug("using .env file")
	} else {
		slog.Debug("no .env file found")
	}
	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("using config file", "path", used)
	}
	return nil
}

func includeEnv() (bool, error) {
	err := godotenv.Load()
	if err != nil {
		if !os.IsNotExist(err) {
			return false, fmt.Errorf("failed to load .env: %w", err)
		}
		return false, nil
	}
	return true, nil
}
