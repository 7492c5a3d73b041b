package parser

import (
	"strconv"

	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/lexer"
)

// parseExpression parses a full type expression. Union binds loosest, then
// intersection, then the postfix forms.
func (p *Parser) parseExpression() ast.Expr {
	first := p.parseIntersection()
	if first == nil {
		return nil
	}
	if p.curTok.Type != lexer.PIPE {
		return first
	}

	options := []ast.Expr{first}
	for p.curTok.Type == lexer.PIPE {
		p.nextToken() // consume '|'
		next := p.parseIntersection()
		if next == nil {
			return nil
		}
		options = append(options, next)
	}

	span := mergeSpan(first.Span(), options[len(options)-1].Span())
	return ast.NewUnionExpression(options, span)
}

func (p *Parser) parseIntersection() ast.Expr {
	first := p.parsePostfix()
	if first == nil {
		return nil
	}
	if p.curTok.Type != lexer.AMPERSAND {
		return first
	}

	operands := []ast.Expr{first}
	for p.curTok.Type == lexer.AMPERSAND {
		p.nextToken() // consume '&'
		next := p.parsePostfix()
		if next == nil {
			return nil
		}
		operands = append(operands, next)
	}

	span := mergeSpan(first.Span(), operands[len(operands)-1].Span())
	return ast.NewIntersectionExpression(operands, span)
}

// parsePostfix parses a primary expression followed by any chain of
// `[]` (array), `<...>` (template application), and `.name` (member access).
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch p.curTok.Type {
		case lexer.LBRACKET:
			start := expr.Span()
			p.nextToken() // consume '['
			end := p.curTok.Span
			if !p.expect(lexer.RBRACKET) {
				return nil
			}
			expr = ast.NewArrayExpression(expr, mergeSpan(start, end))

		case lexer.LT:
			start := expr.Span()
			p.nextToken() // consume '<'
			args := p.parseExpressionList()
			if args == nil {
				return nil
			}
			end := p.curTok.Span
			if !p.expect(lexer.GT) {
				return nil
			}
			expr = ast.NewTemplateApplication(expr, args, mergeSpan(start, end))

		case lexer.DOT:
			start := expr.Span()
			p.nextToken() // consume '.'
			if p.curTok.Type != lexer.IDENT {
				p.reportError("expected member name after '.'", p.curTok.Span)
				return nil
			}
			member := ast.NewIdentifier(p.curTok.Value, p.curTok.Span)
			span := mergeSpan(start, p.curTok.Span)
			p.nextToken()
			expr = ast.NewMemberExpression(expr, member, span)

		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.curTok.Type {
	case lexer.IDENT:
		ident := ast.NewIdentifier(p.curTok.Value, p.curTok.Span)
		p.nextToken()
		return ident

	case lexer.STRING:
		lit := ast.NewStringLiteral(p.curTok.Value, p.curTok.Span)
		p.nextToken()
		return lit

	case lexer.NUMBER:
		value, err := strconv.ParseFloat(p.curTok.Value, 64)
		if err != nil {
			p.reportError("invalid numeric literal", p.curTok.Span)
			return nil
		}
		lit := ast.NewNumericLiteral(value, p.curTok.Raw, p.curTok.Span)
		p.nextToken()
		return lit

	case lexer.TRUE, lexer.FALSE:
		lit := ast.NewBooleanLiteral(p.curTok.Type == lexer.TRUE, p.curTok.Span)
		p.nextToken()
		return lit

	case lexer.LBRACKET:
		return p.parseTupleExpression()

	case lexer.LBRACE:
		start := p.curTok.Span
		props, end, ok := p.parseModelBody()
		if !ok {
			return nil
		}
		return ast.NewModelExpression(props, mergeSpan(start, end))

	case lexer.LPAREN:
		p.nextToken() // consume '('
		inner := p.parseExpression()
		if inner == nil {
			return nil
		}
		if !p.expect(lexer.RPAREN) {
			return nil
		}
		return inner

	default:
		p.reportError("expected type expression", p.curTok.Span)
		return nil
	}
}

// parseTupleExpression parses `[A, B, ...]`.
func (p *Parser) parseTupleExpression() ast.Expr {
	start := p.curTok.Span
	p.nextToken() // consume '['

	if p.curTok.Type == lexer.RBRACKET {
		p.reportError("tuple expression requires at least one element", p.curTok.Span)
		return nil
	}

	values := p.parseExpressionList()
	if values == nil {
		return nil
	}

	end := p.curTok.Span
	if !p.expect(lexer.RBRACKET) {
		return nil
	}
	return ast.NewTupleExpression(values, mergeSpan(start, end))
}

// parseExpressionList parses one or more comma-separated expressions.
func (p *Parser) parseExpressionList() []ast.Expr {
	var exprs []ast.Expr
	for {
		expr := p.parseExpression()
		if expr == nil {
			return nil
		}
		exprs = append(exprs, expr)

		if p.curTok.Type != lexer.COMMA {
			return exprs
		}
		p.nextToken() // consume ','
	}
}

// parsePathExpression parses a dotted name, e.g. a decorator target like
// `service.doc`.
func (p *Parser) parsePathExpression() ast.Expr {
	if p.curTok.Type != lexer.IDENT {
		p.reportError("expected name", p.curTok.Span)
		return nil
	}

	var expr ast.Expr = ast.NewIdentifier(p.curTok.Value, p.curTok.Span)
	start := p.curTok.Span
	p.nextToken()

	for p.curTok.Type == lexer.DOT {
		p.nextToken() // consume '.'
		if p.curTok.Type != lexer.IDENT {
			p.reportError("expected member name after '.'", p.curTok.Span)
			return nil
		}
		member := ast.NewIdentifier(p.curTok.Value, p.curTok.Span)
		expr = ast.NewMemberExpression(expr, member, mergeSpan(start, p.curTok.Span))
		p.nextToken()
	}

	return expr
}
