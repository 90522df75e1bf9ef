// SPDX-License-Identifier: MIT

package linop

import (
	"fmt"
	"math"
)

// New builds an interior node of kind k with the given shape and children.
//
// Leaves have dedicated constructors (NewVariable, NewScalarConst,
// NewDenseConst, NewSparseConst); passing a leaf kind here returns ErrArity.
// New does not re-derive shape semantics per kind and does not check the
// arity of constraint kinds: the canonicalizer rejects malformed
// constraints when it classifies them.
//
// Errors:
//   - ErrUnknownKind if k is not a valid kind.
//   - ErrBadShape    if shape has a negative dimension.
//   - ErrNilNode     if any child is nil.
//   - ErrArity       for leaf kinds.
func New(k Kind, shape Shape, args ...*Node) (*Node, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
	}
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if k.IsLeaf() {
		return nil, fmt.Errorf("%w: %s is a leaf kind", ErrArity, k)
	}
	for i, a := range args {
		if a == nil {
			return nil, fmt.Errorf("%w: argument %d of %s", ErrNilNode, i, k)
		}
	}

	owned := make([]*Node, len(args))
	copy(owned, args)

	return &Node{kind: k, shape: shape, args: owned}, nil
}

// NewVariable builds a Variable leaf. Two Variable nodes with the same id
// denote the same optimization variable.
func NewVariable(id int, shape Shape) (*Node, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}

	return &Node{kind: Variable, shape: shape, varID: id}, nil
}

// NewScalarConst builds a 1x1 ScalarConst leaf. NaN and ±Inf are rejected.
func NewScalarConst(v float64) (*Node, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: non-finite scalar %v", ErrBadData, v)
	}

	return &Node{kind: ScalarConst, shape: Shape{Rows: 1, Cols: 1}, value: v}, nil
}

// NewDenseConst builds a DenseConst leaf from row-major data of length shape.Width().
func NewDenseConst(shape Shape, data []float64) (*Node, error) {
	return newConst(DenseConst, shape, data)
}

// NewSparseConst builds a SparseConst leaf. The payload is stored densely;
// sparsity is a hint for the matrix builder.
func NewSparseConst(shape Shape, data []float64) (*Node, error) {
	return newConst(SparseConst, shape, data)
}

func newConst(k Kind, shape Shape, data []float64) (*Node, error) {
	if err := shape.validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Width() {
		return nil, fmt.Errorf("%w: %s needs %d values, got %d", ErrBadData, shape, shape.Width(), len(data))
	}
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite value at %d", ErrBadData, i)
		}
	}
	owned := make([]float64, len(data))
	copy(owned, data)

	return &Node{kind: k, shape: shape, data: owned}, nil
}

// NewIndex builds an Index node selecting slices of arg.
func NewIndex(shape Shape, arg *Node, slices ...Slice) (*Node, error) {
	n, err := New(Index, shape, arg)
	if err != nil {
		return nil, err
	}
	if len(slices) > 0 {
		n.slices = make([]Slice, len(slices))
		copy(n.slices, slices)
	}

	return n, nil
}

// Equal wraps expr in an Eq constraint of the same shape.
func Equal(expr *Node) (*Node, error) { return wrap(Eq, expr) }

// LessEqual wraps expr in a Leq (nonnegative orthant) constraint.
func LessEqual(expr *Node) (*Node, error) { return wrap(Leq, expr) }

// SecondOrder wraps expr in a SOC constraint.
func SecondOrder(expr *Node) (*Node, error) { return wrap(SOC, expr) }

// ExpCone wraps expr in an Exp constraint.
func ExpCone(expr *Node) (*Node, error) { return wrap(Exp, expr) }

// Semidefinite wraps expr in an SDP constraint. The canonicalizer rejects it.
func Semidefinite(expr *Node) (*Node, error) { return wrap(SDP, expr) }

func wrap(k Kind, expr *Node) (*Node, error) {
	if expr == nil {
		return nil, fmt.Errorf("%w: %s constraint", ErrNilNode, k)
	}

	return New(k, expr.shape, expr)
}
