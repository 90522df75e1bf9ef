// SPDX-License-Identifier: MIT

// Package linop defines the linear-operator expression tree consumed by the
// cone-program canonicalizer.
//
// What
//
//   - Node: an immutable operation or leaf (variable, constant, sum, index,
//     stacking, ...) with a dense Shape and ordered children.
//   - Kind: the closed set of node kinds, including the cone-membership
//     kinds (Eq, Leq, SOC, Exp, SDP) used to express constraints.
//   - Walk: explicit-stack pre-order traversal (no recursion, so very deep
//     trees do not exhaust the goroutine stack).
//   - MarshalNode / UnmarshalNode: JSON interchange encoding of trees.
//
// Immutability
//
//	All Node fields are unexported. Args, Data and Slices return copies, so a
//	tree built by the caller can be shared read-only across goroutines.
//
// Errors
//
//   - ErrUnknownKind  kind outside the closed set (constructor, Walk, decode).
//   - ErrBadShape     negative rows or cols.
//   - ErrNilNode      nil node reached during construction or traversal.
//   - ErrArity        wrong child count for kinds with a fixed arity.
//   - ErrBadData      constant payload does not match the declared shape.
//
// Usage
//
//	x, _ := linop.NewVariable(1, linop.Shape{Rows: 2, Cols: 1})
//	c, _ := linop.NewDenseConst(linop.Shape{Rows: 2, Cols: 1}, []float64{1, 2})
//	d, _ := linop.New(linop.Sum, x.Shape(), x, c)
//	eq, _ := linop.Equal(d)
package linop
