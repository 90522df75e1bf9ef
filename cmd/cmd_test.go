// SPDX-License-Identifier: MIT

package cmd_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conecanon/canon"
	"github.com/katalvlaran/conecanon/cmd"
)

const problemJSON = `{
  "sense": "minimize",
  "objective": {"kind": "SUM_ENTRIES", "shape": [1, 1], "args": [
    {"kind": "VARIABLE", "shape": [2, 1], "var_id": 1}
  ]},
  "constraints": [
    {"kind": "EQ", "shape": [2, 1], "args": [{"kind": "VARIABLE", "shape": [2, 1], "var_id": 1}]},
    {"kind": "LEQ", "shape": [3, 1], "args": [{"kind": "VARIABLE", "shape": [3, 1], "var_id": 2}]}
  ]
}`

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cmd.NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

type layout struct {
	Sense      string          `json:"sense"`
	Arguments  canon.Arguments `json:"arguments"`
	Descriptor struct {
		NumVariables int `json:"num_variables"`
		Cones        []struct {
			Cone string `json:"cone"`
			Dims []int  `json:"dims"`
		} `json:"cones"`
	} `json:"descriptor"`
}

func TestCanonCommand(t *testing.T) {
	problem := writeFile(t, "problem.json", problemJSON)
	argsFile := writeFile(t, "args.yaml", "max_iters: 50\n")

	out, err := run(t, "canon", problem, "--args", argsFile, "--parallel")
	require.NoError(t, err)

	var got layout
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "minimize", got.Sense)
	require.Equal(t, canon.Arguments{"max_iters": 50}, got.Arguments)
	require.Equal(t, 5, got.Descriptor.NumVariables)
	require.Equal(t, "LEQ", got.Descriptor.Cones[1].Cone)
	require.Equal(t, []int{3}, got.Descriptor.Cones[1].Dims)
}

func TestCanonCommand_OutputFile(t *testing.T) {
	problem := writeFile(t, "problem.json", problemJSON)
	outPath := filepath.Join(t.TempDir(), "layout.json")

	out, err := run(t, "canon", problem, "-o", outPath, "--indent")
	require.NoError(t, err)
	require.Empty(t, out)

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(raw), "{\n"))
}

func TestCanonCommand_Errors(t *testing.T) {
	_, err := run(t, "canon", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	sdp := writeFile(t, "sdp.json", `{"objective":{"kind":"SCALAR_CONST","shape":[1,1]},
		"constraints":[{"kind":"SDP","shape":[2,2],"args":[{"kind":"VARIABLE","shape":[2,2],"var_id":1}]}]}`)
	_, err = run(t, "canon", sdp)
	require.ErrorIs(t, err, canon.ErrUnsupportedConeKind)

	_, err = run(t, "canon")
	require.Error(t, err)
}

func TestKindsCommand(t *testing.T) {
	out, err := run(t, "kinds")
	require.NoError(t, err)
	require.Contains(t, out, "VARIABLE")
	require.Contains(t, out, fmt.Sprintf("%-13s %s\n", "SDP", "cone (unsupported)"))
	require.Contains(t, out, fmt.Sprintf("%-13s %s\n", "SOC", "cone"))
	require.Contains(t, out, fmt.Sprintf("%-13s %s\n", "DENSE_CONST", "leaf"))
}
