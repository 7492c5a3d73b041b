package parser

import (
	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/diag"
	"github.com/wanlwanl/fork-typespec/internal/lexer"
)

// Option configures a Parser.
type Option func(*options)

type options struct {
	filename string
}

// WithFilename configures the parser to attribute all emitted spans to the
// provided filename.
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// ParseError captures a recoverable parsing error with location context.
type ParseError struct {
	Message  string
	Span     lexer.Span
	Severity diag.Severity
}

// ToDiagnostic converts a parse error into a shared diagnostic structure.
func (e ParseError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: e.Severity,
		Code:     diag.CodeParseUnexpectedToken,
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Parser implements a recursive descent parser for ADL source.
//
// Token discipline: every parse method is entered with curTok positioned on
// the first token of its construct and returns with curTok on the first
// token after it. expect consumes curTok on success. Errors are appended to
// an ordered accumulator; callers consult Errors after ParseScript.
type Parser struct {
	lx      *lexer.Lexer
	curTok  lexer.Token
	peekTok lexer.Token

	errors []ParseError

	filename string
}

// New returns a parser initialised with the provided source input.
func New(input string, opts ...Option) *Parser {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	p := &Parser{
		lx:       lexer.New(input),
		filename: cfg.filename,
	}

	if cfg.filename != "" {
		p.lx.SetFilename(cfg.filename)
	}

	// Seed curTok/peekTok.
	p.nextToken()
	p.nextToken()

	return p
}

// Errors returns all recoverable parse errors that were encountered.
func (p *Parser) Errors() []ParseError {
	return p.errors
}

// LexerErrors returns errors reported by the underlying lexer.
func (p *Parser) LexerErrors() []lexer.LexerError {
	return p.lx.Errors
}

// ParseScript parses a full compilation unit and returns its AST.
func (p *Parser) ParseScript() *ast.ADLScript {
	script := ast.NewADLScript(p.curTok.Span)

	for p.curTok.Type != lexer.EOF {
		prevTok := p.curTok
		stmt := p.parseStatement()
		if stmt != nil {
			script.Statements = append(script.Statements, stmt)
			script.SetSpan(mergeSpan(script.Span(), stmt.Span()))
			continue
		}

		if p.curTok.Type == lexer.EOF {
			break
		}

		p.recoverStatement(prevTok)
	}

	script.SetSpan(mergeSpan(script.Span(), p.curTok.Span))

	return script
}

// nextToken advances the parser's token window. After the call,
// curTok == old(peekTok); the lexer is only queried from this hop.
func (p *Parser) nextToken() {
	p.curTok = p.peekTok
	p.peekTok = p.lx.NextToken()
}

// expect asserts that the current token matches the provided type and
// consumes it on success.
func (p *Parser) expect(tt lexer.TokenType) bool {
	if p.curTok.Type == tt {
		p.nextToken()
		return true
	}

	p.reportError("expected '"+string(tt)+"'", p.curTok.Span)
	return false
}

// reportError records a recoverable diagnostic without aborting parsing.
func (p *Parser) reportError(msg string, span lexer.Span) {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	p.errors = append(p.errors, ParseError{
		Message:  msg,
		Span:     span,
		Severity: diag.SeverityError,
	})
}

func sameTokenPosition(a, b lexer.Token) bool {
	return a.Type == b.Type && a.Span.Start == b.Span.Start && a.Span.End == b.Span.End
}

func isStatementStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.IMPORT, lexer.MODEL, lexer.NAMESPACE, lexer.AT:
		return true
	default:
		return false
	}
}

// recoverStatement skips to the next plausible statement boundary after a
// parse failure so one malformed declaration does not swallow the rest of
// the file.
func (p *Parser) recoverStatement(prev lexer.Token) {
	if p.curTok.Type == lexer.EOF {
		return
	}

	if sameTokenPosition(p.curTok, prev) {
		p.nextToken()
	}

	for p.curTok.Type != lexer.EOF {
		switch p.curTok.Type {
		case lexer.SEMICOLON:
			p.nextToken()
			return
		default:
			if isStatementStart(p.curTok.Type) {
				return
			}
		}

		p.nextToken()
	}
}

// mergeSpan assumes start.End <= end.End and returns a span covering both.
// Spans are half-open; callers pass the earliest start span first so AST
// node spans grow monotonically.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
