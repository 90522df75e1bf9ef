// SPDX-License-Identifier: MIT

package canon

import (
	"fmt"

	"github.com/katalvlaran/conecanon/linop"
)

// ConeKind identifies one of the supported cones.
type ConeKind int

// Supported cones, in the order their blocks are laid out.
const (
	EQ  ConeKind = iota // zero cone (equalities)
	LEQ                 // nonnegative orthant
	SOC                 // second-order cones
	EXP                 // exponential cones
)

// coneKinds lists every supported cone in layout order.
var coneKinds = [...]ConeKind{EQ, LEQ, SOC, EXP}

// ConeKinds returns the supported cones in layout order.
func ConeKinds() []ConeKind {
	out := make([]ConeKind, len(coneKinds))
	copy(out, coneKinds[:])

	return out
}

// String returns the short cone name.
func (c ConeKind) String() string {
	switch c {
	case EQ:
		return "EQ"
	case LEQ:
		return "LEQ"
	case SOC:
		return "SOC"
	case EXP:
		return "EXP"
	default:
		return fmt.Sprintf("ConeKind(%d)", int(c))
	}
}

// coneOf maps a constraint node kind to its cone.
// SDP is recognized but has no cone here.
func coneOf(k linop.Kind) (ConeKind, error) {
	switch k {
	case linop.Eq:
		return EQ, nil
	case linop.Leq:
		return LEQ, nil
	case linop.SOC:
		return SOC, nil
	case linop.Exp:
		return EXP, nil
	case linop.SDP:
		return 0, fmt.Errorf("%w: semidefinite constraints are not supported", ErrUnsupportedConeKind)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedConeKind, k)
	}
}

// Variable is a distinct optimization variable. Identity is the ID alone.
type Variable struct {
	ID    int
	Shape linop.Shape
}

// Width returns the scalar width of the variable.
func (v Variable) Width() int { return v.Shape.Width() }

// Descriptor is the canonical form of one problem.
// It is built fresh by Canonicalize and not modified afterwards.
type Descriptor struct {
	// ConstraintsByCone holds each constraint's wrapped expression, grouped by
	// cone in original order. Every cone key is present.
	ConstraintsByCone map[ConeKind][]*linop.Node

	// DimsByCone holds one total for EQ, LEQ and EXP, and one entry per
	// constraint for SOC.
	DimsByCone map[ConeKind][]int

	// RowOffsets holds, per cone, the row at which each constraint's block
	// starts within that cone's block.
	RowOffsets map[ConeKind][]int

	// VarOffset maps variable id to its first column.
	VarOffset map[int]int

	// Variables lists the distinct variables in column order.
	Variables []Variable

	// NumVariables is the total scalar width of all variables.
	NumVariables int
}

// TotalRows returns the number of rows the cone contributes.
func (d *Descriptor) TotalRows(c ConeKind) int {
	total := 0
	for _, n := range d.DimsByCone[c] {
		total += n
	}

	return total
}

// NumConstraints returns the total number of classified constraints.
func (d *Descriptor) NumConstraints() int {
	total := 0
	for _, c := range coneKinds {
		total += len(d.ConstraintsByCone[c])
	}

	return total
}
