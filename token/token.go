package token

// Type is the lexical category of a token. Literal-keyed categories use
// their exact spelling as the value, so resolving an operator or reserved
// word is a plain map lookup on the raw text.
type Type string

const (
	// Special tokens
	ROOT    Type = "ROOT"    // Synthetic category for the tree root
	UNKNOWN Type = "UNKNOWN" // Not yet classified by a later stage

	// Layout
	NEWLINE Type = "NEWLINE" // \n
	COMMENT Type = "COMMENT" // // a comment
	INDENT  Type = "INDENT"  // Reserved for a layout-sensitive mode
	DEDENT  Type = "DEDENT"  // Reserved for a layout-sensitive mode
	SPACE   Type = "SPACE"   // A run of spaces and tabs

	// Literals
	STRING Type = "STRING" // "hello world"
	NAME   Type = "NAME"   // main, x, 123

	// Operators
	ADD    Type = "+"
	SUB    Type = "-"
	MUL    Type = "*"
	DIV    Type = "/"
	MOD    Type = "%"
	NEG    Type = "~"
	INC    Type = "++"
	DEC    Type = "--"
	LT     Type = "<"
	GT     Type = ">"
	AND    Type = "&"
	OR     Type = "|"
	NOT    Type = "!"
	XOR    Type = "^"
	LSHIFT Type = "<<"
	RSHIFT Type = ">>"
	ARROW  Type = "->"

	// Delimiters
	LPARENTHESES Type = "("
	RPARENTHESES Type = ")"
	LBRACE       Type = "{"
	RBRACE       Type = "}"
	LBRACKET     Type = "["
	RBRACKET     Type = "]"

	// Keywords
	FN    Type = "FN"    // fn
	PRINT Type = "PRINT" // print
	NOP   Type = "NOP"   // nop
)

var operators = map[string]Type{
	"+":  ADD,
	"-":  SUB,
	"*":  MUL,
	"/":  DIV,
	"%":  MOD,
	"~":  NEG,
	"++": INC,
	"--": DEC,
	"<":  LT,
	">":  GT,
	"&":  AND,
	"|":  OR,
	"!":  NOT,
	"^":  XOR,
	"<<": LSHIFT,
	">>": RSHIFT,
	"->": ARROW,
	"(":  LPARENTHESES,
	")":  RPARENTHESES,
	"{":  LBRACE,
	"}":  RBRACE,
	"[":  LBRACKET,
	"]":  RBRACKET,
}

var keywords = map[string]Type{
	"fn":    FN,
	"print": PRINT,
	"nop":   NOP,
}

// operatorChars is derived from the single-character operator spellings, so
// every character the lexer peels off an operator run is guaranteed a match.
var operatorChars = func() map[byte]bool {
	chars := make(map[byte]bool)
	for lit := range operators {
		if len(lit) == 1 {
			chars[lit[0]] = true
		}
	}
	return chars
}()

// LookupOperator resolves a full operator spelling to its category. It is
// the longest-match probe: the lexer tries the whole remaining run first
// and peels one character at a time on failure.
func LookupOperator(lit string) (Type, bool) {
	typ, ok := operators[lit]
	return typ, ok
}

// LookupWord checks the keywords table for a word.
// If the word is a reserved keyword, it returns the keyword's token type.
// Otherwise, it returns NAME.
func LookupWord(word string) Type {
	if typ, ok := keywords[word]; ok {
		return typ
	}
	return NAME
}

// IsOperatorChar reports whether ch belongs to the operator character set.
func IsOperatorChar(ch byte) bool {
	return operatorChars[ch]
}

// Token represents a classified, verbatim substring of the source text.
type Token struct {
	Type    Type
	Literal string
}

// String returns the display text of the token. Whitespace categories have
// no readable spelling and display as a bracketed tag instead.
func (t Token) String() string {
	switch t.Type {
	case SPACE:
		return "[SPACE]"
	case NEWLINE:
		return "[NEWLINE]"
	default:
		return t.Literal
	}
}
