// SPDX-License-Identifier: MIT

package linop

import "fmt"

// Kind tags the operation a Node performs.
// The zero value is Invalid so that an uninitialized Node never passes
// validation.
type Kind int

// Expression kinds.
const (
	Invalid Kind = iota

	Variable    // leaf: optimization variable, carries VarID
	Promote     // broadcast a scalar to Shape
	Mul         // left multiplication by a constant
	RMul        // right multiplication by a constant
	MulElem     // elementwise multiplication by a constant
	Div         // division by a scalar constant
	Sum         // sum of all arguments
	Neg         // negation
	Index       // slicing, carries Slices
	Transpose   // matrix transpose
	SumEntries  // sum of all entries
	Trace       // matrix trace
	Reshape     // column-major reshape
	DiagVec     // vector to diagonal matrix
	DiagMat     // diagonal of a matrix
	UpperTri    // strict upper triangle as a vector
	Conv        // 1-D convolution with a constant
	HStack      // horizontal concatenation
	VStack      // vertical concatenation
	ScalarConst // leaf: scalar constant, carries Value
	DenseConst  // leaf: dense constant, carries Data
	SparseConst // leaf: sparse constant, stored densely in Data
	NoOp        // identity placeholder
	Kron        // Kronecker product with a constant

	// Cone-membership kinds. Each wraps exactly one child.
	Eq  // child ∈ {0}
	Leq // child ∈ nonnegative orthant
	SOC // child ∈ second-order cone
	Exp // child ∈ exponential cone
	SDP // child ∈ semidefinite cone (recognized, unsupported downstream)

	kindSentinel
)

var kindNames = [...]string{
	Invalid:     "INVALID",
	Variable:    "VARIABLE",
	Promote:     "PROMOTE",
	Mul:         "MUL",
	RMul:        "RMUL",
	MulElem:     "MUL_ELEM",
	Div:         "DIV",
	Sum:         "SUM",
	Neg:         "NEG",
	Index:       "INDEX",
	Transpose:   "TRANSPOSE",
	SumEntries:  "SUM_ENTRIES",
	Trace:       "TRACE",
	Reshape:     "RESHAPE",
	DiagVec:     "DIAG_VEC",
	DiagMat:     "DIAG_MAT",
	UpperTri:    "UPPER_TRI",
	Conv:        "CONV",
	HStack:      "HSTACK",
	VStack:      "VSTACK",
	ScalarConst: "SCALAR_CONST",
	DenseConst:  "DENSE_CONST",
	SparseConst: "SPARSE_CONST",
	NoOp:        "NO_OP",
	Kron:        "KRON",
	Eq:          "EQ",
	Leq:         "LEQ",
	SOC:         "SOC",
	Exp:         "EXP",
	SDP:         "SDP",
}

// Valid reports whether k belongs to the closed Kind set.
func (k Kind) Valid() bool {
	return k > Invalid && k < kindSentinel
}

// IsConstraint reports whether k is a cone-membership kind.
func (k Kind) IsConstraint() bool {
	return k >= Eq && k <= SDP
}

// IsLeaf reports whether nodes of kind k never have children.
func (k Kind) IsLeaf() bool {
	switch k {
	case Variable, ScalarConst, DenseConst, SparseConst:
		return true
	default:
		return false
	}
}

// String returns the upper-case wire name of k.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a wire name back to its Kind.
// Returns ErrUnknownKind for names outside the closed set, including "INVALID".
func ParseKind(name string) (Kind, error) {
	for k := Variable; k < kindSentinel; k++ {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return Invalid, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindSentinel)-1)
	for k := Variable; k < kindSentinel; k++ {
		out = append(out, k)
	}

	return out
}
