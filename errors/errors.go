package errors

import (
	"fmt"

	"github.com/zerglang/go-zerg/token"
)

// SyntaxError is a non-recoverable grammar violation found by the parser.
// It carries the token that broke the grammar rule; the zero Token means
// the input ended where more tokens were required.
type SyntaxError struct {
	Message string
	Token   token.Token
}

func (e *SyntaxError) Error() string {
	if e.Token == (token.Token{}) {
		return fmt.Sprintf("zerg: syntax error: %s, but the input ended", e.Message)
	}
	return fmt.Sprintf("zerg: syntax error: %s, but got %q", e.Message, e.Token.Literal)
}
