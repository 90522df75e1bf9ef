// SPDX-License-Identifier: MIT

package linop

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// wireNode is the JSON interchange form of a Node.
type wireNode struct {
	Kind   string      `json:"kind"`
	Shape  [2]int      `json:"shape"`
	Args   []*wireNode `json:"args,omitempty"`
	VarID  *int        `json:"var_id,omitempty"`
	Value  float64     `json:"value,omitempty"`
	Data   []float64   `json:"data,omitempty"`
	Slices []wireSlice `json:"slices,omitempty"`
}

type wireSlice struct {
	Start int `json:"start"`
	Stop  int `json:"stop"`
	Step  int `json:"step"`
}

// MarshalNode encodes the tree rooted at n as JSON.
func MarshalNode(n *Node) ([]byte, error) {
	w, err := toWire(n)
	if err != nil {
		return nil, err
	}

	return json.Marshal(w)
}

// UnmarshalNode decodes a tree previously produced by MarshalNode.
//
// Decoding validates kinds, shapes and constant payloads, but keeps
// constraint nodes with a wrong child count as-is so the canonicalizer can
// report them as malformed.
func UnmarshalNode(data []byte) (*Node, error) {
	var w wireNode
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("linop: decode: %w", err)
	}

	return fromWire(&w)
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	return MarshalNode(n)
}

// UnmarshalJSON implements json.Unmarshaler. It is intended for decoding
// into a fresh Node; it must not be used on a node already shared in a tree.
func (n *Node) UnmarshalJSON(data []byte) error {
	decoded, err := UnmarshalNode(data)
	if err != nil {
		return err
	}
	*n = *decoded

	return nil
}

func toWire(n *Node) (*wireNode, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	if !n.kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, n.kind)
	}
	w := &wireNode{
		Kind:  n.kind.String(),
		Shape: [2]int{n.shape.Rows, n.shape.Cols},
		Value: n.value,
		Data:  n.data,
	}
	if n.kind == Variable {
		id := n.varID
		w.VarID = &id
	}
	for _, s := range n.slices {
		w.Slices = append(w.Slices, wireSlice(s))
	}
	if len(n.args) > 0 {
		w.Args = make([]*wireNode, len(n.args))
		for i, a := range n.args {
			child, err := toWire(a)
			if err != nil {
				return nil, err
			}
			w.Args[i] = child
		}
	}

	return w, nil
}

func fromWire(w *wireNode) (*Node, error) {
	if w == nil {
		return nil, ErrNilNode
	}
	k, err := ParseKind(w.Kind)
	if err != nil {
		return nil, err
	}
	shape := Shape{Rows: w.Shape[0], Cols: w.Shape[1]}

	switch k {
	case Variable:
		if w.VarID == nil {
			return nil, fmt.Errorf("%w: VARIABLE without var_id", ErrBadData)
		}
		if len(w.Args) > 0 {
			return nil, fmt.Errorf("%w: VARIABLE is a leaf kind", ErrArity)
		}
		return NewVariable(*w.VarID, shape)
	case ScalarConst:
		if len(w.Args) > 0 {
			return nil, fmt.Errorf("%w: SCALAR_CONST is a leaf kind", ErrArity)
		}
		return NewScalarConst(w.Value)
	case DenseConst, SparseConst:
		if len(w.Args) > 0 {
			return nil, fmt.Errorf("%w: %s is a leaf kind", ErrArity, k)
		}
		return newConst(k, shape, w.Data)
	}

	args := make([]*Node, len(w.Args))
	for i, wa := range w.Args {
		if args[i], err = fromWire(wa); err != nil {
			return nil, err
		}
	}
	n, err := New(k, shape, args...)
	if err != nil {
		return nil, err
	}
	for _, s := range w.Slices {
		n.slices = append(n.slices, Slice(s))
	}

	return n, nil
}
