// SPDX-License-Identifier: MIT

package canon_test

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conecanon/canon"
	"github.com/katalvlaran/conecanon/linop"
)

const inputJSON = `{
  "sense": "maximize",
  "objective": {"kind": "SUM_ENTRIES", "shape": [1, 1], "args": [
    {"kind": "VARIABLE", "shape": [2, 1], "var_id": 1}
  ]},
  "constraints": [
    {"kind": "EQ", "shape": [2, 1], "args": [{"kind": "VARIABLE", "shape": [2, 1], "var_id": 1}]},
    {"kind": "LEQ", "shape": [3, 1], "args": [{"kind": "VARIABLE", "shape": [3, 1], "var_id": 2}]}
  ]
}`

func TestDecodeInput(t *testing.T) {
	in, err := canon.DecodeInput(strings.NewReader(inputJSON))
	require.NoError(t, err)
	require.Equal(t, canon.Maximize, in.Sense)
	require.Equal(t, linop.SumEntries, in.Objective.Kind())
	require.Len(t, in.Constraints, 2)

	d, err := canon.Canonicalize(in.Objective, in.Constraints)
	require.NoError(t, err)
	require.Equal(t, map[int]int{1: 0, 2: 2}, d.VarOffset)
	require.Equal(t, 5, d.NumVariables)
}

func TestDecodeInput_DefaultsAndErrors(t *testing.T) {
	in, err := canon.DecodeInput(strings.NewReader(`{"objective":{"kind":"SCALAR_CONST","shape":[1,1],"value":2}}`))
	require.NoError(t, err)
	require.Equal(t, canon.Minimize, in.Sense)
	require.Empty(t, in.Constraints)

	_, err = canon.DecodeInput(strings.NewReader(`{"constraints":[]}`))
	require.ErrorIs(t, err, canon.ErrNilObjective)

	_, err = canon.DecodeInput(strings.NewReader(`{"sense":"sideways","objective":{"kind":"SCALAR_CONST","shape":[1,1]}}`))
	require.ErrorIs(t, err, canon.ErrUnknownSense)

	_, err = canon.DecodeInput(strings.NewReader(`{"objective":{"kind":"SCALAR_CONST","shape":[1,1]},"constraints":[null]}`))
	require.ErrorIs(t, err, canon.ErrMalformedConstraint)

	_, err = canon.DecodeInput(strings.NewReader(`{"objective":{"kind":"WAT","shape":[1,1]}}`))
	require.Error(t, err)
}

func TestDescriptor_MarshalJSON(t *testing.T) {
	x := mustVar(t, 1, col2)
	y := mustVar(t, 2, col3)
	d, err := canon.Canonicalize(x, []*linop.Node{constraint(t, linop.Eq, x), constraint(t, linop.Leq, y)})
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)

	var decoded struct {
		NumVariables int `json:"num_variables"`
		Variables    []struct {
			ID     int `json:"id"`
			Offset int `json:"offset"`
		} `json:"variables"`
		Cones []struct {
			Cone        string            `json:"cone"`
			Dims        []int             `json:"dims"`
			Constraints []json.RawMessage `json:"constraints"`
		} `json:"cones"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, 5, decoded.NumVariables)
	require.Len(t, decoded.Variables, 2)
	require.Equal(t, 2, decoded.Variables[1].Offset)

	require.Len(t, decoded.Cones, 4)
	names := []string{decoded.Cones[0].Cone, decoded.Cones[1].Cone, decoded.Cones[2].Cone, decoded.Cones[3].Cone}
	require.Equal(t, []string{"EQ", "LEQ", "SOC", "EXP"}, names)
	require.Equal(t, []int{3}, decoded.Cones[1].Dims)
	require.Equal(t, []int{}, decoded.Cones[2].Dims)
	require.Len(t, decoded.Cones[1].Constraints, 1)

	back, err := linop.UnmarshalNode(decoded.Cones[1].Constraints[0])
	require.NoError(t, err)
	require.Equal(t, 2, back.VarID())
}

func TestProblem_MarshalJSON(t *testing.T) {
	x := mustVar(t, 1, col2)
	d, err := canon.Canonicalize(x, nil)
	require.NoError(t, err)

	p := &canon.Problem{Sense: canon.Maximize, Objective: x, Descriptor: d}
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"sense":"maximize"`)
	require.Contains(t, string(raw), `"arguments":{}`)
	require.Contains(t, string(raw), `"num_variables":2`)
}
