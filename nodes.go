package exprtree

import (
	"strconv"
	"strings"
)

// Node is a node in the binary tree of an expression. A leaf holds an integer
// literal. Every other node holds an operator and owns exactly two children.
type Node struct {
	kind  nodeKind
	label string
	// pos is the position of the node's token in the source.
	pos int

	left  *Node
	right *Node
	// parent links back to the node which owns this one. It is nil at the
	// root and is only used to answer Parent.
	parent *Node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push num

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, quo by right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Label returns the node's text: the digits of a literal, or the operator.
func (n *Node) Label() string {
	return n.label
}

// Left returns the left operand of an operator node, or nil for a leaf.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right operand of an operator node, or nil for a leaf.
func (n *Node) Right() *Node {
	return n.right
}

// Parent returns the operator node that has n as an operand, or nil if n is
// the root of its tree.
func (n *Node) Parent() *Node {
	return n.parent
}

// IsLeaf returns whether n is an integer literal.
func (n *Node) IsLeaf() bool {
	return n.kind == nodeNum
}

// String creates a string representation of the tree rooted at n, with
// alternating round and square brackets grouping each term.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.label)
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(n.label)
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("exprtree: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
