package ast

import (
	"strings"

	"github.com/zerglang/go-zerg/token"
)

// indentWidth is the number of spaces each tree level is shifted by when
// rendering a node.
const indentWidth = 4

// Node is a labeled, ordered tree node produced by the parser. It holds
// exactly one token, the ordered list of its children, and a non-owning
// back-reference to its parent. A node with a nil parent is the tree root.
type Node struct {
	token    token.Token
	parent   *Node
	children []*Node
}

// New creates a leaf node labeled with the given token.
func New(tok token.Token) *Node {
	return &Node{token: tok}
}

// NewRoot creates a root node labeled with the synthetic ROOT token.
func NewRoot() *Node {
	return New(token.Token{Type: token.ROOT, Literal: "."})
}

// Token returns the token the node is labeled with.
func (n *Node) Token() token.Token {
	return n.token
}

// Parent returns the parent of the node, or nil for the tree root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the ordered children of the node.
func (n *Node) Children() []*Node {
	return n.children
}

// Append attaches child as the last child of the node and sets the child's
// parent. It returns the node itself so a statement's children can be
// attached left to right in a single chain. A node must never be appended
// under two different parents.
func (n *Node) Append(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return n
}

// Contains reports whether child is a direct (not transitive) child of the
// node.
func (n *Node) Contains(child *Node) bool {
	for _, c := range n.children {
		if c == child {
			return true
		}
	}
	return false
}

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// IsLast reports whether the node is the last child of its parent. The
// root counts as last.
func (n *Node) IsLast() bool {
	return n.IsRoot() || n.parent.children[len(n.parent.children)-1] == n
}

// String renders the subtree as a human-readable drawing. The root line is
// the bare token text; every other line is indented by its depth and
// prefixed with a branch connector, `├─` for a mid child and `└─` for the
// last child of its parent.
func (n *Node) String() string {
	var out strings.Builder
	n.render(&out, 0)
	return out.String()
}

func (n *Node) render(out *strings.Builder, indent int) {
	if n.IsRoot() {
		out.WriteString(n.token.String())
	} else {
		connector := "├─"
		if n.IsLast() {
			connector = "└─"
		}
		out.WriteString(strings.Repeat(" ", indent))
		out.WriteString(connector)
		out.WriteString("  ")
		out.WriteString(n.token.String())
	}

	for _, child := range n.children {
		out.WriteString("\n")
		child.render(out, indent+indentWidth)
	}
}
