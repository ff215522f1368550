package tree

import "encoding/json"

// nodeJSON is Node's wire shape: Parent is deliberately omitted (it would
// make every serialization a cycle) and is reconstructed on unmarshal.
type nodeJSON struct {
	Kind     Kind    `json:"kind"`
	Value    string  `json:"value,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// MarshalJSON renders n as {kind, value, children}, the generic
// labeled-tree shape package tree consumes from an external surface
// parser — this is the one place a concrete wire encoding for it needs
// to exist, to keep cmd/vecc runnable without a grammar parser of its
// own.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(nodeJSON{Kind: n.Kind, Value: n.Value, Children: n.Children})
}

// UnmarshalJSON is MarshalJSON's inverse, re-linking every decoded child's
// Parent back to n (JSON has no cycles, so Parent cannot round-trip
// directly).
func (n *Node) UnmarshalJSON(data []byte) error {
	var aux nodeJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.Kind = aux.Kind
	n.Value = aux.Value
	n.Children = aux.Children
	for _, c := range n.Children {
		c.Parent = n
	}

	return nil
}
