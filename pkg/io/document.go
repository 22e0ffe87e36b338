package io

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is the on-disk form of a graph and an optional highlight selection.
//
// Exactly one of Matrix, Nodes/Edges or Graph6 describes the graph.
type Document struct {
	Matrix    [][]float64 `json:"matrix,omitempty"`
	Nodes     []NodeEntry `json:"nodes,omitempty"`
	Edges     []EdgeEntry `json:"edges,omitempty"`
	Graph6    string      `json:"graph6,omitempty"`
	Highlight *Highlight  `json:"highlight,omitempty"`
}

// Highlight is the selection section of a document.
type Highlight struct {
	Nodes []Ref       `json:"nodes,omitempty"`
	Edges []EdgeEntry `json:"edges,omitempty"`
	Path  []Ref       `json:"path,omitempty"`
	// Symmetric adds the reverse of every listed edge.
	Symmetric bool `json:"symmetric,omitempty"`
}

// Ref is a node identifier. It decodes from a JSON string or number; numbers
// keep their literal text, so 3 becomes "3".
type Ref string

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ref) UnmarshalJSON(data []byte) error {
	s, err := decodeRef(data)
	if err != nil {
		return err
	}
	*r = Ref(s)
	return nil
}

func decodeRef(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("node reference must be a string or number, got %s", data)
	}
	return n.String(), nil
}

// NodeEntry is one element of the nodes list: either a bare identifier or an
// object {"id": ..., "x": ..., "y": ...} carrying a fixed position.
type NodeEntry struct {
	ID     string
	Placed bool
	X, Y   float64
}

type placedEntry struct {
	ID Ref      `json:"id"`
	X  *float64 `json:"x"`
	Y  *float64 `json:"y"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NodeEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		id, err := decodeRef(data)
		if err != nil {
			return err
		}
		*n = NodeEntry{ID: id}
		return nil
	}

	var p placedEntry
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.ID == "" {
		return fmt.Errorf("node object is missing \"id\"")
	}
	if p.X == nil || p.Y == nil {
		return fmt.Errorf("node %q needs both \"x\" and \"y\"", p.ID)
	}
	*n = NodeEntry{ID: string(p.ID), Placed: true, X: *p.X, Y: *p.Y}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n NodeEntry) MarshalJSON() ([]byte, error) {
	if !n.Placed {
		return json.Marshal(n.ID)
	}
	x, y := n.X, n.Y
	return json.Marshal(placedEntry{ID: Ref(n.ID), X: &x, Y: &y})
}

// EdgeEntry is an edge written as a two element list ["a", "b"] or as an
// object {"from": "a", "to": "b"}.
type EdgeEntry struct {
	From string
	To   string
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *EdgeEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			From *Ref `json:"from"`
			To   *Ref `json:"to"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.From == nil || obj.To == nil {
			return fmt.Errorf("edge object needs \"from\" and \"to\"")
		}
		*e = EdgeEntry{From: string(*obj.From), To: string(*obj.To)}
		return nil
	}

	var pair []Ref
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("edge must be a [from, to] pair: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("edge must have exactly two endpoints, got %d", len(pair))
	}
	*e = EdgeEntry{From: string(pair[0]), To: string(pair[1])}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (e EdgeEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.From, e.To})
}
