// SPDX-License-Identifier: MIT

// Package cmd holds the conecanon command tree.
package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/conecanon/config"
)

// app is the state shared by the subcommands of one root command.
type app struct {
	env    config.Env
	logger *zap.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           "conecanon",
		Short:         "conecanon - lay out cone programs for conic solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.AddCommand(newCanonCmd(a))
	root.AddCommand(newKindsCmd())

	return root
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) init() error {
	e, err := config.ParseEnv()
	if err != nil {
		return err
	}
	lvl, err := e.Level()
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	a.env = e
	a.logger = logger

	return nil
}
