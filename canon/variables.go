// SPDX-License-Identifier: MIT

package canon

import (
	"fmt"

	"github.com/katalvlaran/conecanon/linop"
)

// CollectVariables returns one Variable per Variable node under root, in
// pre-order with children visited left to right. Repeats are kept; they are
// removed by AssignOffsets.
//
// Errors:
//   - linop.ErrNilNode, linop.ErrUnknownKind  from the traversal.
func CollectVariables(root *linop.Node) ([]Variable, error) {
	var vars []Variable
	err := linop.Walk(root, func(n *linop.Node, _ int) error {
		if n.Kind() == linop.Variable {
			vars = append(vars, Variable{ID: n.VarID(), Shape: n.Shape()})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return vars, nil
}

// EnumerateVariables collects the variables of the objective and then of
// every constraint tree, in that order. Constraint trees are walked whole,
// wrapping node included.
func EnumerateVariables(objective *linop.Node, constraints []*linop.Node) ([]Variable, error) {
	if objective == nil {
		return nil, ErrNilObjective
	}
	vars, err := CollectVariables(objective)
	if err != nil {
		return nil, fmt.Errorf("objective: %w", err)
	}
	var more []Variable
	for i, c := range constraints {
		if more, err = CollectVariables(c); err != nil {
			return nil, fmt.Errorf("constraint %d: %w", i, err)
		}
		vars = append(vars, more...)
	}

	return vars, nil
}
