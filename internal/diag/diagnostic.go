package diag

import "fmt"

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer   Stage = "lexer"
	StageParser  Stage = "parser"
	StageBind    Stage = "bind"
	StageResolve Stage = "resolve"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerUnterminatedString       Code = "LEXER_UNTERMINATED_STRING"
	CodeLexerUnterminatedBlockComment Code = "LEXER_UNTERMINATED_BLOCK_COMMENT"
	CodeLexerIllegalRune              Code = "LEXER_ILLEGAL_RUNE"

	// Parser errors
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"

	// Binder errors
	CodeBindDuplicateDeclaration Code = "BIND_DUPLICATE_DECLARATION"

	// Resolver errors
	CodeResolveUnresolvedReference Code = "RESOLVE_UNRESOLVED_REFERENCE"
	CodeResolveUnresolvedDecorator Code = "RESOLVE_UNRESOLVED_DECORATOR"
	CodeResolveCircularReference   Code = "RESOLVE_CIRCULAR_REFERENCE"
	CodeResolveTemplateArity       Code = "RESOLVE_TEMPLATE_ARITY"
	CodeResolveAmbiguousProperty   Code = "RESOLVE_AMBIGUOUS_PROPERTY"
)

// Span represents a location in source code.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a compiler diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Related  []Span   // other spans involved, e.g. the first of two colliding declarations
	Notes    []string // additional notes to display
}

// WithRelated returns a new diagnostic with the given related span added.
func (d Diagnostic) WithRelated(span Span) Diagnostic {
	d.Related = append(d.Related, span)
	return d
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}
