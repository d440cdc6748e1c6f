// Package config resolves dfkit settings from an optional dfkit.yaml, DFKIT_*
// environment variables and command line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	fileName  = "dfkit"
	fileType  = "yaml"
	envPrefix = "DFKIT"

	KeyLoggingType  = "logging.type"
	KeyLogLevel     = "logging.level"
	KeyCargo        = "runner.cargo"
	KeyCMake        = "runner.cmake"
	KeyDataflow     = "runner.dataflow"
	KeyRuntime      = "runner.runtime"
	defaultDataflow = "dora-daemon --run-dataflow"
	defaultRuntime  = "dora-runtime"
)

// Config holds the resolved settings.
type Config struct {
	LoggingType string
	LogLevel    string
	Cargo       string
	CMake       string
	Dataflow    []string
	Runtime     []string
}

// New returns a viper instance with defaults, env binding and, when present,
// dfkit.yaml from dir.
func New(dir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(dir)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyLoggingType, "tint")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyCMake, "cmake")
	v.SetDefault(KeyDataflow, defaultDataflow)
	v.SetDefault(KeyRuntime, defaultRuntime)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return v, nil
}

// Resolve reads the settings out of v.
func Resolve(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		LoggingType: v.GetString(KeyLoggingType),
		LogLevel:    v.GetString(KeyLogLevel),
		Cargo:       v.GetString(KeyCargo),
		CMake:       v.GetString(KeyCMake),
		Dataflow:    strings.Fields(v.GetString(KeyDataflow)),
		Runtime:     strings.Fields(v.GetString(KeyRuntime)),
	}

	// cargo sets CARGO for build scripts and runners it spawns.
	if cfg.Cargo == "" {
		cfg.Cargo = os.Getenv("CARGO")
	}
	if cfg.Cargo == "" {
		cfg.Cargo = "cargo"
	}

	if len(cfg.Dataflow) == 0 {
		return nil, fmt.Errorf("%s must not be empty", KeyDataflow)
	}
	if len(cfg.Runtime) == 0 {
		return nil, fmt.Errorf("%s must not be empty", KeyRuntime)
	}

	return cfg, nil
}
