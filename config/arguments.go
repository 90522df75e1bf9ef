// SPDX-License-Identifier: MIT

// Package config loads solver arguments from YAML files and process settings
// from the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/conecanon/canon"
)

// ErrBadArgument indicates a solver argument whose value is not a finite number.
var ErrBadArgument = errors.New("config: solver argument must be a finite number")

// LoadArguments reads a YAML mapping of solver knobs, e.g.
//
//	max_iters: 200
//	feastol: 1.0e-8
func LoadArguments(path string) (canon.Arguments, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read arguments: %w", err)
	}

	return ParseArguments(data)
}

// ParseArguments decodes a YAML mapping of string keys to numbers.
// An empty document yields an empty, non-nil Arguments.
//
// Errors:
//   - ErrBadArgument  for non-numeric, nested or non-finite values.
//   - YAML syntax errors, wrapped.
func ParseArguments(data []byte) (canon.Arguments, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse arguments: %w", err)
	}

	args := make(canon.Arguments, len(raw))
	for k, v := range raw {
		var f float64
		switch n := v.(type) {
		case int:
			f = float64(n)
		case int64:
			f = float64(n)
		case uint64:
			f = float64(n)
		case float64:
			f = n
		default:
			return nil, fmt.Errorf("%w: %q has value %v", ErrBadArgument, k, v)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %q has value %v", ErrBadArgument, k, f)
		}
		args[k] = f
	}

	return args, nil
}
