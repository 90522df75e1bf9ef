// SPDX-License-Identifier: MIT

package linop

import "fmt"

// VisitFunc is called once per node in pre-order. depth is 0 for the root.
// Returning a non-nil error aborts the walk with that error.
type VisitFunc func(n *Node, depth int) error

// frame is one pending node on the explicit traversal stack.
type frame struct {
	node  *Node
	depth int
}

// Walk visits root and its descendants in pre-order, children left to right.
//
// The traversal uses an explicit stack, so its depth is bounded by heap
// memory rather than the goroutine stack. Every visited node is validated
// before fn sees it.
//
// Errors:
//   - ErrNilNode     if root or any descendant is nil.
//   - ErrUnknownKind if a node kind is outside the closed set.
//   - any error returned by fn, unchanged.
//
// Complexity: O(N) time, O(D·B) memory for depth D and branching B.
func Walk(root *Node, fn VisitFunc) error {
	stack := []frame{{node: root}}
	var (
		top frame
		i   int
		err error
	)
	for len(stack) > 0 {
		top = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node == nil {
			return fmt.Errorf("%w: at depth %d", ErrNilNode, top.depth)
		}
		if !top.node.kind.Valid() {
			return fmt.Errorf("%w: %s at depth %d", ErrUnknownKind, top.node.kind, top.depth)
		}
		if err = fn(top.node, top.depth); err != nil {
			return err
		}

		// push in reverse so the leftmost child is popped first
		for i = len(top.node.args) - 1; i >= 0; i-- {
			stack = append(stack, frame{node: top.node.args[i], depth: top.depth + 1})
		}
	}

	return nil
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root *Node) (int, error) {
	n := 0
	err := Walk(root, func(*Node, int) error {
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}
