package exprtree

import "encoding/json"

// Entry is one node of a flattened expression tree.
type Entry struct {
	// ID is the index of the node in pre-order. The root's ID is 0.
	ID int
	// Label is the node's label, as returned by Node.Label.
	Label string
	// ParentID is the ID of the node's parent, or -1 for the root.
	ParentID int
	// Parent is the label of the node's parent, or empty for the root.
	// Labels are not unique, so ParentID identifies the parent.
	Parent string
}

// IsRoot returns whether the entry is for the root of its tree.
func (e Entry) IsRoot() bool {
	return e.ParentID < 0
}

type entryJSON struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Parent   *string `json:"parent"`
	ParentID int     `json:"parent_id"`
}

// MarshalJSON encodes the entry as an object with id, name, parent, and
// parent_id fields. The root's parent is null.
func (e Entry) MarshalJSON() ([]byte, error) {
	v := entryJSON{ID: e.ID, Name: e.Label, ParentID: e.ParentID}
	if !e.IsRoot() {
		v.Parent = &e.Parent
	}
	return json.Marshal(v)
}

// Hierarchy flattens the tree rooted at n into a list of entries, visiting
// each node before its left and then its right operand. A nil tree produces
// no entries. Hierarchy does not modify the tree.
func Hierarchy(n *Node) []Entry {
	if n == nil {
		return nil
	}
	return n.hier(nil, -1)
}

func (n *Node) hier(v []Entry, parent int) []Entry {
	e := Entry{ID: len(v), Label: n.label, ParentID: parent}
	if parent >= 0 {
		e.Parent = v[parent].Label
	}
	v = append(v, e)
	if n.left != nil {
		v = n.left.hier(v, e.ID)
	}
	if n.right != nil {
		v = n.right.hier(v, e.ID)
	}
	return v
}
