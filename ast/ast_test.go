package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zerglang/go-zerg/token"
)

func TestLeafNode(t *testing.T) {
	tok := token.Token{Type: token.SPACE, Literal: " "}
	node := New(tok)

	require.Equal(t, tok, node.Token())
	require.Nil(t, node.Parent())
	require.Empty(t, node.Children())
	require.True(t, node.IsRoot())
	require.True(t, node.IsLast())
	require.Equal(t, "[SPACE]", node.String())
}

func TestNewRoot(t *testing.T) {
	root := NewRoot()

	require.Equal(t, token.ROOT, root.Token().Type)
	require.Equal(t, ".", root.Token().Literal)
	require.Equal(t, ".", root.String())
}

func TestAppend(t *testing.T) {
	parent := New(token.Token{Type: token.SPACE, Literal: " "})
	child := New(token.Token{Type: token.NAME, Literal: "variable"})

	got := parent.Append(child)

	require.Same(t, parent, got, "Append returns the parent for chaining")
	require.Equal(t, []*Node{child}, parent.Children())
	require.Same(t, parent, child.Parent())
	require.True(t, parent.Contains(child))
	require.False(t, child.IsRoot())
	require.Equal(t, "[SPACE]\n    └─  variable", parent.String())
}

func TestAppendChaining(t *testing.T) {
	node := New(token.Token{Type: token.ADD, Literal: "+"})

	node.Append(New(token.Token{Type: token.NAME, Literal: "1"})).
		Append(New(token.Token{Type: token.NAME, Literal: "2"}))

	require.Len(t, node.Children(), 2)
	require.Equal(t, "1", node.Children()[0].Token().Literal)
	require.Equal(t, "2", node.Children()[1].Token().Literal)
	require.Equal(t, "+\n    ├─  1\n    └─  2", node.String())
}

func TestContainsIsDirectOnly(t *testing.T) {
	root := NewRoot()
	child := New(token.Token{Type: token.FN, Literal: "fn"})
	grandchild := New(token.Token{Type: token.NAME, Literal: "main"})

	root.Append(child)
	child.Append(grandchild)

	require.True(t, root.Contains(child))
	require.True(t, child.Contains(grandchild))
	require.False(t, root.Contains(grandchild), "Contains does not answer transitive membership")
	require.False(t, root.Contains(New(token.Token{Type: token.NOP, Literal: "nop"})))
}

func TestIsLast(t *testing.T) {
	root := NewRoot()
	first := New(token.Token{Type: token.NAME, Literal: "first"})
	second := New(token.Token{Type: token.NAME, Literal: "second"})

	root.Append(first).Append(second)

	require.True(t, root.IsLast(), "the root counts as last")
	require.False(t, first.IsLast())
	require.True(t, second.IsLast())
}

func TestRenderNestedTree(t *testing.T) {
	root := NewRoot()
	fn := New(token.Token{Type: token.FN, Literal: "fn"})
	name := New(token.Token{Type: token.NAME, Literal: "main"})
	body := NewRoot()
	nop := New(token.Token{Type: token.NOP, Literal: "nop"})

	body.Append(nop)
	fn.Append(name).Append(body)
	root.Append(fn)

	expected := "." +
		"\n    └─  fn" +
		"\n        ├─  main" +
		"\n        └─  ." +
		"\n            └─  nop"
	require.Equal(t, expected, root.String())
}
