// Package conecanon turns a symbolic cone program into the exact numeric
// layout a conic solver consumes.
//
// What is conecanon?
//
//	A small, deterministic, concurrency-safe library:
//		• linop/ : immutable linear-operator expression trees, traversal, JSON codec
//		• canon/ : cone classification, cone dimensions, variable offsets, Solve entry point
//		• config/: YAML solver arguments and environment settings
//		• cmd/   : the conecanon command line front end
//
// Canonical form
//
//	Constraints are grouped by cone (EQ, LEQ, SOC, EXP) in input order.
//	EQ, LEQ and EXP report one concatenated dimension each; every SOC
//	constraint is its own cone and reports its own row count. Variables
//	are ordered by id and packed into contiguous columns [0, n).
//
// Quick example:
//
//	x, _ := linop.NewVariable(1, linop.Shape{Rows: 2, Cols: 1})
//	eq, _ := linop.Equal(x)
//	d, err := canon.Canonicalize(x, []*linop.Node{eq})
//	// d.VarOffset == map[int]int{1: 0}, d.DimsByCone[canon.EQ] == []int{2}
//
// Matrix assembly and the numeric solve live behind canon.Solver.
//
//	go get github.com/katalvlaran/conecanon
package conecanon
