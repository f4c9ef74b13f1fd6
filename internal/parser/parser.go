package parser

import (
	"github.com/rs/zerolog/log"

	"github.com/zerglang/go-zerg/ast"
	"github.com/zerglang/go-zerg/errors"
	"github.com/zerglang/go-zerg/internal/lexer"
	"github.com/zerglang/go-zerg/token"
)

// Parser consumes the noise-free token stream and builds the syntax tree
// by recursive descent. Grammar rules peek at most one token ahead; a token
// read but not consumed is pushed back onto a small stack that is drained
// before the stream is pulled again.
type Parser struct {
	l     *lexer.Lexer
	stack []token.Token
}

// New creates a new parser over the given lexer.
func New(l *lexer.Lexer) *Parser {
	return &Parser{l: l}
}

// Parse consumes the token stream and returns the root node of the syntax
// tree. Any grammar violation aborts the whole parse; there is no recovery
// and no partial tree.
func (p *Parser) Parse() (*ast.Node, error) {
	defer p.l.Stop()
	return p.parseSource()
}

// next returns the next unconsumed token, draining the pushback stack
// before pulling from the stream. The second result is false once both are
// empty.
func (p *Parser) next() (token.Token, bool) {
	if n := len(p.stack); n > 0 {
		tok := p.stack[n-1]
		p.stack = p.stack[:n-1]
		return tok, true
	}
	return p.l.Next()
}

// unread pushes a token back so the following call to next returns it
// again.
func (p *Parser) unread(tok token.Token) {
	p.stack = append(p.stack, tok)
}

// require pulls the next token and fails with a syntax error unless it has
// the wanted category.
func (p *Parser) require(typ token.Type, msg string) (token.Token, error) {
	tok, ok := p.next()
	if !ok {
		return token.Token{}, &errors.SyntaxError{Message: msg}
	}
	if tok.Type != typ {
		return token.Token{}, &errors.SyntaxError{Message: msg, Token: tok}
	}
	return tok, nil
}

// source := block*
//
// The rule ends on a RBRACE lookahead, pushed back so the enclosing scope
// can consume it, or on the end of the input. It currently accepts at most
// one statement per source.
func (p *Parser) parseSource() (*ast.Node, error) {
	root := ast.NewRoot()

	tok, ok := p.next()
	if !ok {
		return root, nil
	}
	if tok.Type == token.RBRACE {
		p.unread(tok)
		return root, nil
	}

	block, err := p.parseBlock(tok)
	if err != nil {
		return nil, err
	}
	root.Append(block)

	return root, nil
}

// block := NOP | fn_stmt
func (p *Parser) parseBlock(tok token.Token) (*ast.Node, error) {
	log.Debug().Str("token", tok.String()).Str("type", string(tok.Type)).Msg("parse the block")

	switch tok.Type {
	case token.NOP:
		return ast.New(tok), nil
	case token.FN:
		return p.parseFuncStmt(tok)
	default:
		return nil, &errors.SyntaxError{Message: "expecting a statement", Token: tok}
	}
}

// fn_stmt := FN func_head scope
func (p *Parser) parseFuncStmt(fn token.Token) (*ast.Node, error) {
	log.Debug().Str("token", fn.String()).Msg("parse the function statement")

	head, err := p.parseFuncHead()
	if err != nil {
		return nil, err
	}
	body, err := p.parseScope()
	if err != nil {
		return nil, err
	}

	return ast.New(fn).Append(head).Append(body), nil
}

// func_head := NAME LPARENTHESES [func_args] RPARENTHESES [ARROW type_hint]
func (p *Parser) parseFuncHead() (*ast.Node, error) {
	name, err := p.require(token.NAME, "function should follow with a name")
	if err != nil {
		return nil, err
	}
	node := ast.New(name)

	if _, err := p.require(token.LPARENTHESES, "function name should follow with ("); err != nil {
		return nil, err
	}
	tok, ok := p.next()
	if !ok {
		return nil, &errors.SyntaxError{Message: "expecting ) to close the parameter list"}
	}
	if tok.Type != token.RPARENTHESES {
		args, err := p.parseFuncArgs(tok)
		if err != nil {
			return nil, err
		}
		node.Append(args)
	}

	// the return type hint is optional
	if tok, ok := p.next(); ok {
		if tok.Type != token.ARROW {
			p.unread(tok)
			return node, nil
		}
		hint, err := p.parseTypeHint(tok)
		if err != nil {
			return nil, err
		}
		node.Append(hint)
	}

	return node, nil
}

// scope := LBRACE source RBRACE
func (p *Parser) parseScope() (*ast.Node, error) {
	if _, err := p.require(token.LBRACE, "expecting { to open the scope"); err != nil {
		return nil, err
	}
	node, err := p.parseSource()
	if err != nil {
		return nil, err
	}
	if _, err := p.require(token.RBRACE, "expecting } to close the scope"); err != nil {
		return nil, err
	}
	return node, nil
}

// parseFuncArgs handles the function parameter list. The grammar does not
// define parameters yet, so reaching this rule always fails.
func (p *Parser) parseFuncArgs(tok token.Token) (*ast.Node, error) {
	return nil, &errors.SyntaxError{Message: "function parameters are not supported", Token: tok}
}

// parseTypeHint handles the return type after the arrow. The grammar does
// not define type hints yet, so reaching this rule always fails.
func (p *Parser) parseTypeHint(tok token.Token) (*ast.Node, error) {
	return nil, &errors.SyntaxError{Message: "function type hints are not supported", Token: tok}
}
