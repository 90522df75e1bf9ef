// SPDX-License-Identifier: MIT

package linop

import "errors"

// Sentinel errors for tree construction, traversal and decoding.
// Callers match them with errors.Is; context is added with %w.
var (
	// ErrUnknownKind indicates a node kind outside the closed Kind set.
	ErrUnknownKind = errors.New("linop: unknown node kind")

	// ErrBadShape indicates a negative row or column count.
	ErrBadShape = errors.New("linop: invalid shape")

	// ErrNilNode indicates a nil *Node where a node is required.
	ErrNilNode = errors.New("linop: nil node")

	// ErrArity indicates a child count that the node kind does not accept.
	ErrArity = errors.New("linop: wrong number of arguments")

	// ErrBadData indicates a constant payload inconsistent with the node shape.
	ErrBadData = errors.New("linop: constant data does not match shape")
)
