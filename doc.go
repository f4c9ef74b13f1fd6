/*
Package zerg provides the source-to-syntax-tree front end of the zerg
language: a multi-stage lexer that refines raw source text into a
classified token stream, and a recursive-descent parser that builds an
ordered, parent-linked syntax tree from it.

The package exposes a single entry point. Parse takes the full source text
of one compilation unit and returns the root node of its tree:

	node, err := zerg.Parse([]byte("fn main() { nop }"))
	if err != nil {
		// handle error
	}
	fmt.Println(node)

The returned ast.Node is the whole interface a downstream consumer walks:
its token, its ordered children, and its parent. The node also renders
itself as a tree drawing for diagnostics; the snippet above prints

	.
	    └─  fn
	        ├─  main
	        └─  .
	            └─  nop

Lexing is lenient and never fails: unterminated strings and comments or
stray punctuation degrade to best-effort tokens. The parser is strict and
fails fast: any grammar violation aborts the parse with a
*errors.SyntaxError carrying the unexpected token, with no recovery and no
partial tree.

The grammar currently covers an empty statement (nop) and a zero-argument
function declaration; parameters, type hints and expressions are reserved
for future work.
*/
package zerg
