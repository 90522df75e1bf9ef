// SPDX-License-Identifier: MIT

package linop

import "fmt"

// Shape is the dense (rows, cols) shape a Node evaluates to.
type Shape struct {
	Rows int
	Cols int
}

// Width returns the flattened element count Rows*Cols.
func (s Shape) Width() int {
	return s.Rows * s.Cols
}

// String renders the shape as "RxC".
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

func (s Shape) validate() error {
	if s.Rows < 0 || s.Cols < 0 {
		return fmt.Errorf("%w: %s", ErrBadShape, s)
	}

	return nil
}

// Slice is one axis of an Index node, in half-open [Start, Stop) form.
type Slice struct {
	Start int
	Stop  int
	Step  int
}

// Node is one operation or leaf of a linear-operator tree.
//
// A Node is immutable once constructed; the accessors return copies of
// slice-valued fields. Trees are acyclic by construction because a node can
// only reference nodes that already exist.
type Node struct {
	kind   Kind
	shape  Shape
	args   []*Node
	varID  int       // Variable only
	value  float64   // ScalarConst only
	data   []float64 // DenseConst/SparseConst, row-major
	slices []Slice   // Index only
}

// Kind returns the node kind.
func (n *Node) Kind() Kind { return n.kind }

// Shape returns the node shape.
func (n *Node) Shape() Shape { return n.shape }

// NumArgs returns the number of children without copying them.
func (n *Node) NumArgs() int { return len(n.args) }

// Arg returns the i-th child. It panics if i is out of range, like slice indexing.
func (n *Node) Arg(i int) *Node { return n.args[i] }

// Args returns a copy of the ordered children.
func (n *Node) Args() []*Node {
	out := make([]*Node, len(n.args))
	copy(out, n.args)

	return out
}

// VarID returns the variable identifier. Meaningful only when Kind() == Variable.
func (n *Node) VarID() int { return n.varID }

// Value returns the scalar payload of a ScalarConst node.
func (n *Node) Value() float64 { return n.value }

// Data returns a copy of the row-major payload of a dense or sparse constant.
func (n *Node) Data() []float64 {
	if n.data == nil {
		return nil
	}
	out := make([]float64, len(n.data))
	copy(out, n.data)

	return out
}

// Slices returns a copy of the per-axis slices of an Index node.
func (n *Node) Slices() []Slice {
	if n.slices == nil {
		return nil
	}
	out := make([]Slice, len(n.slices))
	copy(out, n.slices)

	return out
}

// String renders a compact description such as "SUM[2x1](2 args)".
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.kind == Variable {
		return fmt.Sprintf("VARIABLE#%d[%s]", n.varID, n.shape)
	}

	return fmt.Sprintf("%s[%s](%d args)", n.kind, n.shape, len(n.args))
}
