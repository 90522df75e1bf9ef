// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/conecanon/linop"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List expression and constraint kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, k := range linop.Kinds() {
				role := "expr"
				switch {
				case k == linop.SDP:
					role = "cone (unsupported)"
				case k.IsConstraint():
					role = "cone"
				case k.IsLeaf():
					role = "leaf"
				}
				if _, err := fmt.Fprintf(w, "%-13s %s\n", k, role); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
