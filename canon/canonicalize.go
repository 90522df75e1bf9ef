// SPDX-License-Identifier: MIT

package canon

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/conecanon/linop"
)

// Canonicalize builds the canonical descriptor of a problem.
//
// Stages:
//  1. Classify constraints by cone.
//  2. Compute cone dimensions from the classification.
//  3. Enumerate variables of the objective and of every raw constraint tree.
//  4. Assign contiguous offsets in ascending id order.
//
// Stages 2 and 3+4 are independent; with WithParallel they run concurrently.
// If both fail, the dimension error is returned so the result does not
// depend on scheduling. Input trees are never modified.
//
// Errors: see the package documentation. No descriptor is returned on error.
func Canonicalize(objective *linop.Node, constraints []*linop.Node, opts ...Option) (*Descriptor, error) {
	o := gatherOptions(opts...)
	log := o.Logger

	if objective == nil {
		return nil, ErrNilObjective
	}

	grouped, err := Classify(constraints)
	if err != nil {
		log.Debug("classification failed", zap.Error(err))
		return nil, err
	}
	log.Debug("constraints classified",
		zap.Int("constraints", len(constraints)),
		zap.Int("eq", len(grouped[EQ])),
		zap.Int("leq", len(grouped[LEQ])),
		zap.Int("soc", len(grouped[SOC])),
		zap.Int("exp", len(grouped[EXP])),
	)

	var (
		dims     map[ConeKind][]int
		dimsErr  error
		ordered  []Variable
		varsErr  error
		dimsStep = func() error {
			dims, dimsErr = ComputeDimensions(grouped)
			return dimsErr
		}
		varsStep = func() error {
			var vars []Variable
			if vars, varsErr = EnumerateVariables(objective, constraints); varsErr != nil {
				return varsErr
			}
			ordered, varsErr = OrderVariables(vars)
			return varsErr
		}
	)

	if o.Parallel {
		var g errgroup.Group
		g.Go(dimsStep)
		g.Go(varsStep)
		_ = g.Wait() // both errors are inspected below in a fixed order
	} else {
		_ = dimsStep()
		if dimsErr == nil {
			_ = varsStep()
		}
	}
	if dimsErr != nil {
		log.Debug("dimension computation failed", zap.Error(dimsErr))
		return nil, dimsErr
	}
	if varsErr != nil {
		log.Debug("variable enumeration failed", zap.Error(varsErr))
		return nil, varsErr
	}

	offsets, total := offsetsOf(ordered)
	d := &Descriptor{
		ConstraintsByCone: grouped,
		DimsByCone:        dims,
		RowOffsets:        rowOffsets(grouped),
		VarOffset:         offsets,
		Variables:         ordered,
		NumVariables:      total,
	}
	log.Debug("problem canonicalized",
		zap.Int("variables", len(ordered)),
		zap.Int("num_variables", total),
		zap.Int("eq_rows", d.TotalRows(EQ)),
		zap.Int("leq_rows", d.TotalRows(LEQ)),
		zap.Ints("soc_dims", dims[SOC]),
		zap.Int("exp_rows", d.TotalRows(EXP)),
		zap.Bool("parallel", o.Parallel),
	)

	return d, nil
}
