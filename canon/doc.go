// SPDX-License-Identifier: MIT

// Package canon reduces a symbolic cone program (an objective and a list of
// cone constraints over linop trees) to the layout a conic solver expects.
//
// What
//
//   - Classify constraints by cone: EQ, LEQ, SOC, EXP. SDP is rejected.
//   - Compute the dimension of every cone: one scalar total for EQ, LEQ and
//     EXP; one entry per constraint for SOC, since each is its own cone.
//   - Enumerate the variables referenced by the objective and constraints.
//   - Assign every distinct variable a contiguous 0-based column offset.
//
// Determinism
//
//	Variables are ordered by ascending id; constraints keep their input
//	order inside their cone group. Repeated calls on the same input return
//	identical descriptors, in sequential and in parallel mode.
//
// Pipeline
//
//	constraints ─► Classify ─► ComputeDimensions ───────────┐
//	                                                        ├─► Descriptor ─► Solver
//	objective+constraints ─► EnumerateVariables ─► AssignOffsets ┘
//
// Options
//
//   - WithParallel():  run dimensions and offsets on separate goroutines.
//   - WithLogger(l):   structured stage logging through zap (default: no-op).
//
// Errors
//
//   - ErrUnsupportedConeKind       SDP, non-constraint or unknown constraint kind.
//   - ErrMalformedConstraint       nil constraint, wrong child count, SOC with Cols != 1.
//   - ErrInconsistentVariableSize  one variable id seen with two shapes.
//   - ErrNilObjective, ErrNilSolver, ErrUnknownSense  from Solve.
//   - linop.ErrNilNode, linop.ErrUnknownKind  from tree traversal.
//
// All errors are fatal and no partial descriptor is returned.
package canon
