// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/conecanon/canon"
	"github.com/katalvlaran/conecanon/config"
)

type canonFlags struct {
	argsFile string
	outPath  string
	parallel bool
	indent   bool
}

func newCanonCmd(a *app) *cobra.Command {
	var f canonFlags
	c := &cobra.Command{
		Use:   "canon <problem.json>",
		Short: "Canonicalize a problem and print its layout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCanon(cmd.OutOrStdout(), args[0], f)
		},
	}
	c.Flags().StringVar(&f.argsFile, "args", "", "YAML file of solver arguments (default $CONECANON_ARGS)")
	c.Flags().StringVarP(&f.outPath, "output", "o", "", "write JSON to this path instead of stdout")
	c.Flags().BoolVar(&f.parallel, "parallel", false, "compute dimensions and offsets concurrently")
	c.Flags().BoolVar(&f.indent, "indent", false, "indent JSON output")

	return c
}

func (a *app) runCanon(stdout io.Writer, path string, f canonFlags) error {
	fh, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	in, err := canon.DecodeInput(fh)
	if err != nil {
		a.logger.Error("decode problem", zap.String("path", path), zap.Error(err))
		return err
	}

	argsFile := f.argsFile
	if argsFile == "" {
		argsFile = a.env.ArgsFile
	}
	args := canon.Arguments{}
	if argsFile != "" {
		if args, err = config.LoadArguments(argsFile); err != nil {
			a.logger.Error("load arguments", zap.String("path", argsFile), zap.Error(err))
			return err
		}
	}

	opts := []canon.Option{canon.WithLogger(a.logger)}
	if f.parallel || a.env.Parallel {
		opts = append(opts, canon.WithParallel())
	}
	d, err := canon.Canonicalize(in.Objective, in.Constraints, opts...)
	if err != nil {
		a.logger.Error("canonicalize", zap.String("path", path), zap.Error(err))
		return err
	}

	p := &canon.Problem{Sense: in.Sense, Objective: in.Objective, Descriptor: d, Arguments: args}
	var out []byte
	if f.indent {
		out, err = json.MarshalIndent(p, "", "  ")
	} else {
		out, err = json.Marshal(p)
	}
	if err != nil {
		return err
	}
	out = append(out, '\n')

	if f.outPath != "" {
		if err = os.WriteFile(f.outPath, out, 0o644); err != nil {
			return err
		}
		a.logger.Info("layout written", zap.String("path", f.outPath), zap.Int("num_variables", d.NumVariables))
		return nil
	}
	_, err = fmt.Fprint(stdout, string(out))

	return err
}
