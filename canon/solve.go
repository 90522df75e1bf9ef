// SPDX-License-Identifier: MIT

package canon

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/conecanon/linop"
)

// Sense is the optimization direction.
type Sense int

const (
	// Minimize the objective.
	Minimize Sense = iota
	// Maximize the objective.
	Maximize
)

// String returns "minimize" or "maximize".
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// ParseSense maps "minimize"/"maximize" back to a Sense.
func ParseSense(name string) (Sense, error) {
	switch name {
	case "minimize":
		return Minimize, nil
	case "maximize":
		return Maximize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSense, name)
	}
}

// Status reports the outcome of a solver call.
type Status int

// Solver outcomes.
const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusOptimalInaccurate
	StatusInfeasible
	StatusUnbounded
	StatusSolverError
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusOptimalInaccurate:
		return "optimal_inaccurate"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusSolverError:
		return "solver_error"
	default:
		return "unknown"
	}
}

// Arguments are solver tuning knobs, passed through without interpretation.
type Arguments map[string]float64

// Solution is what the solver returns. Solve hands it back unchanged.
type Solution struct {
	Status       Status
	OptimalValue float64

	// Primal maps variable id to its value, flattened column-major.
	Primal map[int][]float64
}

// Problem is everything the matrix-building and solving collaborator needs.
// Offsets and dimensions in Descriptor are consistent: every variable id in
// the trees has an offset and group widths sum to the stated dimensions.
type Problem struct {
	Sense      Sense
	Objective  *linop.Node
	Descriptor *Descriptor
	Arguments  Arguments
}

// Solver builds coefficient matrices from a Problem and solves it.
type Solver interface {
	Solve(ctx context.Context, p *Problem) (*Solution, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, p *Problem) (*Solution, error)

// Solve calls f(ctx, p).
func (f SolverFunc) Solve(ctx context.Context, p *Problem) (*Solution, error) {
	return f(ctx, p)
}

// Solve canonicalizes the problem and forwards it to solver.
//
// The context only bounds the solver call; canonicalization is CPU-bound and
// runs to completion. args is passed through as-is.
//
// Errors:
//   - ErrNilSolver, ErrUnknownSense, ErrNilObjective  on invalid input.
//   - any Canonicalize error, unchanged.
//   - solver errors, wrapped as "canon: solver: %w".
func Solve(ctx context.Context, solver Solver, sense Sense, objective *linop.Node,
	constraints []*linop.Node, args Arguments, opts ...Option) (*Solution, error) {
	if solver == nil {
		return nil, ErrNilSolver
	}
	if sense != Minimize && sense != Maximize {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSense, sense)
	}

	o := gatherOptions(opts...)
	d, err := Canonicalize(objective, constraints, opts...)
	if err != nil {
		o.Logger.Error("canonicalization failed", zap.Stringer("sense", sense), zap.Error(err))
		return nil, err
	}

	p := &Problem{Sense: sense, Objective: objective, Descriptor: d, Arguments: args}
	sol, err := solver.Solve(ctx, p)
	if err != nil {
		o.Logger.Error("solver failed", zap.Stringer("sense", sense), zap.Error(err))
		return nil, fmt.Errorf("canon: solver: %w", err)
	}
	if sol != nil {
		o.Logger.Debug("solver finished",
			zap.Stringer("status", sol.Status),
			zap.Float64("optimal_value", sol.OptimalValue),
		)
	}

	return sol, nil
}
