// SPDX-License-Identifier: MIT

package canon

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"

	"github.com/katalvlaran/conecanon/linop"
)

type wireVariable struct {
	ID     int `json:"id"`
	Rows   int `json:"rows"`
	Cols   int `json:"cols"`
	Offset int `json:"offset"`
}

type wireCone struct {
	Cone        string        `json:"cone"`
	Dims        []int         `json:"dims"`
	RowOffsets  []int         `json:"row_offsets"`
	Constraints []*linop.Node `json:"constraints"`
}

type wireDescriptor struct {
	NumVariables int            `json:"num_variables"`
	Variables    []wireVariable `json:"variables"`
	Cones        []wireCone     `json:"cones"`
}

// MarshalJSON encodes the descriptor with cones in layout order and
// variables sorted by id, so equal descriptors encode to equal bytes.
func (d *Descriptor) MarshalJSON() ([]byte, error) {
	w := wireDescriptor{
		NumVariables: d.NumVariables,
		Variables:    make([]wireVariable, 0, len(d.Variables)),
		Cones:        make([]wireCone, 0, len(coneKinds)),
	}
	for _, v := range d.Variables {
		w.Variables = append(w.Variables, wireVariable{
			ID:     v.ID,
			Rows:   v.Shape.Rows,
			Cols:   v.Shape.Cols,
			Offset: d.VarOffset[v.ID],
		})
	}
	for _, c := range coneKinds {
		w.Cones = append(w.Cones, wireCone{
			Cone:        c.String(),
			Dims:        nonNil(d.DimsByCone[c]),
			RowOffsets:  nonNil(d.RowOffsets[c]),
			Constraints: nonNil(d.ConstraintsByCone[c]),
		})
	}

	return json.Marshal(w)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}

type wireProblem struct {
	Sense      string      `json:"sense"`
	Objective  *linop.Node `json:"objective"`
	Descriptor *Descriptor `json:"descriptor"`
	Arguments  Arguments   `json:"arguments"`
}

// MarshalJSON encodes the problem with its sense name, objective tree,
// descriptor and arguments (keys sorted).
func (p *Problem) MarshalJSON() ([]byte, error) {
	args := p.Arguments
	if args == nil {
		args = Arguments{}
	}

	return json.Marshal(wireProblem{
		Sense:      p.Sense.String(),
		Objective:  p.Objective,
		Descriptor: p.Descriptor,
		Arguments:  args,
	})
}

// Input is a problem as read from an interchange file, before canonicalization.
type Input struct {
	Sense       Sense
	Objective   *linop.Node
	Constraints []*linop.Node
}

type wireInput struct {
	Sense       string        `json:"sense"`
	Objective   *linop.Node   `json:"objective"`
	Constraints []*linop.Node `json:"constraints"`
}

// DecodeInput reads a JSON problem of the form
//
//	{"sense": "minimize", "objective": {...}, "constraints": [{...}, ...]}
//
// An empty sense defaults to minimize.
//
// Errors:
//   - ErrNilObjective  if the objective is missing.
//   - ErrUnknownSense  for a sense other than minimize or maximize.
//   - linop decode errors, wrapped with their position.
func DecodeInput(r io.Reader) (*Input, error) {
	var w wireInput
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("canon: decode input: %w", err)
	}
	if w.Objective == nil {
		return nil, ErrNilObjective
	}
	in := &Input{Objective: w.Objective, Constraints: w.Constraints}
	if w.Sense != "" {
		s, err := ParseSense(w.Sense)
		if err != nil {
			return nil, err
		}
		in.Sense = s
	}
	for i, c := range in.Constraints {
		if c == nil {
			return nil, fmt.Errorf("%w: constraint %d is null", ErrMalformedConstraint, i)
		}
	}

	return in, nil
}
