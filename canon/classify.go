// SPDX-License-Identifier: MIT

package canon

import (
	"fmt"

	"github.com/katalvlaran/conecanon/linop"
)

// newConeMap returns a map with an empty, non-nil slice for every cone.
func newConeMap[T any]() map[ConeKind][]T {
	m := make(map[ConeKind][]T, len(coneKinds))
	for _, c := range coneKinds {
		m[c] = []T{}
	}

	return m
}

// Classify groups constraints by cone, keeping each constraint's sole child.
//
// The result always holds an entry for EQ, LEQ, SOC and EXP. Within a group
// the input order is kept and duplicates are preserved.
//
// Errors:
//   - ErrUnsupportedConeKind  if a constraint kind is SDP or not a cone kind.
//   - ErrMalformedConstraint  if a constraint is nil or has != 1 children.
//
// The kind is checked before the child count.
// Complexity: O(len(constraints)).
func Classify(constraints []*linop.Node) (map[ConeKind][]*linop.Node, error) {
	grouped := newConeMap[*linop.Node]()
	var (
		cone ConeKind
		err  error
	)
	for i, c := range constraints {
		if c == nil {
			return nil, fmt.Errorf("%w: constraint %d is nil", ErrMalformedConstraint, i)
		}
		if cone, err = coneOf(c.Kind()); err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		if c.NumArgs() != 1 {
			return nil, fmt.Errorf("%w: constraint %d (%s) has %d children, want 1",
				ErrMalformedConstraint, i, c.Kind(), c.NumArgs())
		}
		grouped[cone] = append(grouped[cone], c.Arg(0))
	}

	return grouped, nil
}
