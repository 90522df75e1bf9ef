// SPDX-License-Identifier: MIT

package canon_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conecanon/canon"
	"github.com/katalvlaran/conecanon/linop"
)

// Shapes used across canon tests.
var (
	scalar = linop.Shape{Rows: 1, Cols: 1}
	col2   = linop.Shape{Rows: 2, Cols: 1}
	col3   = linop.Shape{Rows: 3, Cols: 1}
	col4   = linop.Shape{Rows: 4, Cols: 1}
	mat2x3 = linop.Shape{Rows: 2, Cols: 3}
)

func mustVar(t *testing.T, id int, s linop.Shape) *linop.Node {
	t.Helper()
	n, err := linop.NewVariable(id, s)
	require.NoError(t, err)

	return n
}

func mustNode(t *testing.T, k linop.Kind, s linop.Shape, args ...*linop.Node) *linop.Node {
	t.Helper()
	n, err := linop.New(k, s, args...)
	require.NoError(t, err)

	return n
}

func mustConst(t *testing.T, s linop.Shape) *linop.Node {
	t.Helper()
	n, err := linop.NewDenseConst(s, make([]float64, s.Width()))
	require.NoError(t, err)

	return n
}

// constraint wraps expr in a cone node of kind k.
func constraint(t *testing.T, k linop.Kind, expr *linop.Node) *linop.Node {
	t.Helper()
	return mustNode(t, k, expr.Shape(), expr)
}

// requireTiles checks that the variable intervals exactly cover [0, num).
func requireTiles(t *testing.T, d *canon.Descriptor) {
	t.Helper()
	type span struct{ lo, hi int }
	spans := make([]span, 0, len(d.Variables))
	for _, v := range d.Variables {
		off, ok := d.VarOffset[v.ID]
		require.True(t, ok, "variable %d has no offset", v.ID)
		spans = append(spans, span{off, off + v.Width()})
	}
	require.Len(t, d.VarOffset, len(d.Variables))
	sort.Slice(spans, func(i, j int) bool { return spans[i].lo < spans[j].lo })

	next := 0
	for _, s := range spans {
		require.Equal(t, next, s.lo, "gap or overlap at %d", next)
		next = s.hi
	}
	require.Equal(t, d.NumVariables, next)
}
