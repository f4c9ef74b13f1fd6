package zerg

import (
	"github.com/zerglang/go-zerg/ast"
	"github.com/zerglang/go-zerg/internal/lexer"
	"github.com/zerglang/go-zerg/internal/parser"
)

// Parse parses the full source text of one compilation unit and returns
// the root node of its syntax tree. A grammar violation aborts the parse
// with a *errors.SyntaxError carrying the offending token; malformed
// lexical input never fails on its own.
func Parse(src []byte) (*ast.Node, error) {
	p := parser.New(lexer.New(src))
	return p.Parse()
}
