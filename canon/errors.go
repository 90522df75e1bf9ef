// SPDX-License-Identifier: MIT

package canon

import "errors"

// Sentinel errors. Every message carries the "canon: " prefix; returned
// errors wrap these with %w so callers match with errors.Is.
var (
	// ErrUnsupportedConeKind indicates a constraint whose kind is SDP, not a
	// cone kind at all, or unknown.
	ErrUnsupportedConeKind = errors.New("canon: unsupported cone kind")

	// ErrMalformedConstraint indicates a nil constraint, a constraint without
	// exactly one child, or an SOC member whose column count is not 1.
	ErrMalformedConstraint = errors.New("canon: malformed constraint")

	// ErrInconsistentVariableSize indicates that one variable id was observed
	// with two different shapes.
	ErrInconsistentVariableSize = errors.New("canon: inconsistent variable size")

	// ErrNilObjective indicates a nil objective passed to Canonicalize or Solve.
	ErrNilObjective = errors.New("canon: objective is nil")

	// ErrNilSolver indicates a nil Solver passed to Solve.
	ErrNilSolver = errors.New("canon: solver is nil")

	// ErrUnknownSense indicates an optimization sense other than Minimize or Maximize.
	ErrUnknownSense = errors.New("canon: unknown optimization sense")
)
