// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Env holds process settings read from the environment.
type Env struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `env:"CONECANON_LOG_LEVEL" envDefault:"info"`

	// Parallel enables intra-call concurrency in the canonicalizer.
	Parallel bool `env:"CONECANON_PARALLEL" envDefault:"false"`

	// ArgsFile is a default YAML solver-arguments file.
	ArgsFile string `env:"CONECANON_ARGS"`
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}

	return e, nil
}

// ParseEnvFrom loads Env from the given variables instead of the process
// environment.
func ParseEnvFrom(vars map[string]string) (Env, error) {
	var e Env
	if err := env.ParseWithOptions(&e, env.Options{Environment: vars}); err != nil {
		return Env{}, fmt.Errorf("config: parse env: %w", err)
	}

	return e, nil
}

// Level returns the parsed zap level.
func (e Env) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(e.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("config: log level: %w", err)
	}

	return lvl, nil
}
