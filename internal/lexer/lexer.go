package lexer

import (
	"iter"

	"github.com/rs/zerolog/log"

	"github.com/zerglang/go-zerg/token"
)

// Lexer is a pull cursor over the classified token stream of one source
// text. The stream is produced lazily: no token is computed until the
// consumer asks for it, and a consumer may stop early. A Lexer is
// single-use; re-lexing a source means creating a new one.
type Lexer struct {
	next func() (token.Token, bool)
	stop func()
}

// New creates a Lexer over the given source text.
func New(src []byte) *Lexer {
	next, stop := iter.Pull(Tokens(src))
	return &Lexer{next: next, stop: stop}
}

// Next returns the next token in the stream. The second result is false
// once the stream is exhausted.
func (l *Lexer) Next() (token.Token, bool) {
	return l.next()
}

// Stop releases the stream. It is safe to call Stop more than once, or
// before the stream is exhausted.
func (l *Lexer) Stop() {
	l.stop()
}

// Tokens returns the lazy token sequence of the source text, refined by
// four stages applied in order: coarse segmentation, operator extraction,
// word identification, and noise removal. The sequence never fails;
// malformed input degrades to best-effort tokens. It is single-use.
func Tokens(src []byte) iter.Seq[token.Token] {
	return dropNoise(Raw(src))
}

// Raw returns the pre-noise token sequence: fully classified, but with the
// SPACE, COMMENT and NEWLINE tokens still in place. Concatenating the
// literals of this sequence reconstructs the source text byte for byte,
// which makes it suitable for diagnostics.
func Raw(src []byte) iter.Seq[token.Token] {
	return identifyWords(extractOperators(scan(src)))
}

// scan performs the coarse left-to-right segmentation of the source.
// Only NEWLINE, COMMENT, SPACE and STRING are classified here; every other
// run of non-whitespace bytes is emitted as a single UNKNOWN token for the
// later stages to refine. Concatenating the literals of this stage yields
// the source text unchanged.
func scan(src []byte) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for index := 0; index < len(src); {
			var tok token.Token

			switch ch := src[index]; {
			case ch == '\n':
				tok = token.Token{Type: token.NEWLINE, Literal: "\n"}
				index++
			case ch == '/' && index+1 < len(src) && src[index+1] == '/':
				// A comment runs to the next newline, or to the end of
				// the input when there is none.
				stop := index + 2
				for stop < len(src) && src[stop] != '\n' {
					stop++
				}
				tok = token.Token{Type: token.COMMENT, Literal: string(src[index:stop])}
				index = stop
			case ch == ' ' || ch == '\t':
				stop := index + 1
				for stop < len(src) && (src[stop] == ' ' || src[stop] == '\t') {
					stop++
				}
				tok = token.Token{Type: token.SPACE, Literal: string(src[index:stop])}
				index = stop
			case ch == '"':
				// An unterminated string silently swallows the remainder
				// of the source. No escape processing.
				stop := index + 1
				for stop < len(src) && src[stop] != '"' {
					stop++
				}
				if stop < len(src) {
					stop++ // include the closing quote
				}
				tok = token.Token{Type: token.STRING, Literal: string(src[index:stop])}
				index = stop
			case ch == '/':
				tok = token.Token{Type: token.UNKNOWN, Literal: "/"}
				index++
			default:
				stop := index
				for stop < len(src) && src[stop] != ' ' && src[stop] != '\t' && src[stop] != '\n' {
					stop++
				}
				tok = token.Token{Type: token.UNKNOWN, Literal: string(src[index:stop])}
				index = stop
			}

			log.Trace().Str("token", tok.String()).Str("type", string(tok.Type)).Msg("scanned the token")
			if !yield(tok) {
				return
			}
		}
	}
}

// extractOperators rescans each UNKNOWN token, partitioning its literal
// into maximal runs of operator characters versus everything else. Operator
// runs resolve by longest match; other runs pass on as UNKNOWN for the word
// stage. Tokens of any other category pass through unchanged.
func extractOperators(tokens iter.Seq[token.Token]) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for tok := range tokens {
			if tok.Type != token.UNKNOWN {
				if !yield(tok) {
					return
				}
				continue
			}
			if !splitUnknown(tok.Literal, yield) {
				return
			}
		}
	}
}

// splitUnknown emits the operator and non-operator runs of a raw literal in
// source order. It returns false when the consumer stops the sequence.
func splitUnknown(raw string, yield func(token.Token) bool) bool {
	var word, run string

	for i := 0; i < len(raw); i++ {
		ch := raw[i : i+1]
		if token.IsOperatorChar(raw[i]) {
			if word != "" {
				if !yield(token.Token{Type: token.UNKNOWN, Literal: word}) {
					return false
				}
				word = ""
			}
			run += ch
		} else {
			if run != "" {
				if !resolveRun(run, yield) {
					return false
				}
				run = ""
			}
			word += ch
		}
	}

	if word != "" {
		if !yield(token.Token{Type: token.UNKNOWN, Literal: word}) {
			return false
		}
	}
	if run != "" {
		if !resolveRun(run, yield) {
			return false
		}
	}
	return true
}

// resolveRun applies the greedy longest-match policy to a run of operator
// characters: the whole remaining run is tried against the literal table
// first, and on failure the first character is peeled off and emitted on
// its own. Every operator character has a single-character category, so the
// peeled character always resolves.
func resolveRun(run string, yield func(token.Token) bool) bool {
	for run != "" {
		if typ, ok := token.LookupOperator(run); ok {
			return yield(token.Token{Type: typ, Literal: run})
		}

		head := run[:1]
		typ, _ := token.LookupOperator(head)
		if !yield(token.Token{Type: typ, Literal: head}) {
			return false
		}
		run = run[1:]
	}
	return true
}

// identifyWords re-tags each surviving UNKNOWN token as a reserved word on
// an exact literal match, and as NAME otherwise. A literal made entirely of
// digits is a NAME like any other; numeric literals are not recognized.
func identifyWords(tokens iter.Seq[token.Token]) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for tok := range tokens {
			if tok.Type == token.UNKNOWN {
				tok.Type = token.LookupWord(tok.Literal)
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// dropNoise removes SPACE, COMMENT and NEWLINE tokens, making the grammar
// layout-insensitive.
func dropNoise(tokens iter.Seq[token.Token]) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for tok := range tokens {
			switch tok.Type {
			case token.SPACE, token.COMMENT, token.NEWLINE:
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}
