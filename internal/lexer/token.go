package lexer

// TokenType represents the type of a token
type TokenType string

// Span represents the source location of a token
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune of the original string
	End      int    // exclusive end index
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Raw   string // exact runes from source
	Value string // decoded value (for strings, same as Raw for others)
	Span  Span   // source location information
}

// Token type constants
const (
	// Special tokens
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers and literals
	IDENT  TokenType = "IDENT"  // Pet, string, x, ...
	NUMBER TokenType = "NUMBER" // 42, 3.14, 1e9
	STRING TokenType = "STRING" // "hello"

	// Operators and punctuation
	ASSIGN    TokenType = "="
	PIPE      TokenType = "|"
	AMPERSAND TokenType = "&"
	QUESTION  TokenType = "?"
	AT        TokenType = "@"
	ELLIPSIS  TokenType = "..."

	LT TokenType = "<"
	GT TokenType = ">"

	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	DOT       TokenType = "."

	LPAREN   TokenType = "("
	RPAREN   TokenType = ")"
	LBRACE   TokenType = "{"
	RBRACE   TokenType = "}"
	LBRACKET TokenType = "["
	RBRACKET TokenType = "]"

	// Keywords
	IMPORT    TokenType = "IMPORT"
	MODEL     TokenType = "MODEL"
	NAMESPACE TokenType = "NAMESPACE"
	EXTENDS   TokenType = "EXTENDS"
	TRUE      TokenType = "TRUE"
	FALSE     TokenType = "FALSE"
)

var keywords = map[string]TokenType{
	"import":    IMPORT,
	"model":     MODEL,
	"namespace": NAMESPACE,
	"extends":   EXTENDS,
	"true":      TRUE,
	"false":     FALSE,
}

// LookupIdent checks if the identifier is a keyword
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}
