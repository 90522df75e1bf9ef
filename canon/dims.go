// SPDX-License-Identifier: MIT

package canon

import (
	"fmt"

	"github.com/katalvlaran/conecanon/linop"
)

// ComputeDimensions returns the dimension of every cone in grouped.
//
//   - EQ, LEQ, EXP: a single entry, the sum of Rows*Cols over the group.
//     These cones are concatenated into one block each.
//   - SOC: one entry per member, equal to its Rows. Every SOC constraint is
//     an independent cone; members must have Cols == 1.
//
// Cones absent from grouped are reported as empty (0 for EQ/LEQ/EXP).
//
// Errors:
//   - ErrMalformedConstraint  if an SOC member has Cols != 1 or a member is nil.
func ComputeDimensions(grouped map[ConeKind][]*linop.Node) (map[ConeKind][]int, error) {
	dims := make(map[ConeKind][]int, len(coneKinds))
	for _, c := range coneKinds {
		members := grouped[c]
		if c == SOC {
			soc := make([]int, 0, len(members))
			for i, m := range members {
				if m == nil {
					return nil, fmt.Errorf("%w: SOC member %d is nil", ErrMalformedConstraint, i)
				}
				if m.Shape().Cols != 1 {
					return nil, fmt.Errorf("%w: SOC member %d has shape %s, want a column",
						ErrMalformedConstraint, i, m.Shape())
				}
				soc = append(soc, m.Shape().Rows)
			}
			dims[SOC] = soc
			continue
		}

		total := 0
		for i, m := range members {
			if m == nil {
				return nil, fmt.Errorf("%w: %s member %d is nil", ErrMalformedConstraint, c, i)
			}
			total += m.Shape().Width()
		}
		dims[c] = []int{total}
	}

	return dims, nil
}

// rowOffsets returns, per cone, the starting row of each member inside the
// cone's block. Members are assumed validated by ComputeDimensions.
func rowOffsets(grouped map[ConeKind][]*linop.Node) map[ConeKind][]int {
	out := make(map[ConeKind][]int, len(coneKinds))
	for _, c := range coneKinds {
		members := grouped[c]
		offs := make([]int, len(members))
		row := 0
		for i, m := range members {
			offs[i] = row
			row += m.Shape().Width()
		}
		out[c] = offs
	}

	return out
}
