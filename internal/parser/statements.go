package parser

import (
	"github.com/wanlwanl/fork-typespec/internal/ast"
	"github.com/wanlwanl/fork-typespec/internal/lexer"
)

func (p *Parser) parseStatement() ast.Stmt {
	decorators := p.parseDecorators()

	switch p.curTok.Type {
	case lexer.IMPORT:
		if len(decorators) > 0 {
			p.reportError("decorators cannot be applied to import statements", decorators[0].Span())
		}
		return p.parseImportStatement()
	case lexer.MODEL:
		return p.parseModelStatement(decorators)
	case lexer.NAMESPACE:
		return p.parseNamespaceStatement(decorators)
	default:
		p.reportError("expected import, model, or namespace declaration", p.curTok.Span)
		return nil
	}
}

// parseDecorators consumes zero or more leading @decorator applications.
func (p *Parser) parseDecorators() []*ast.DecoratorExpression {
	var decorators []*ast.DecoratorExpression

	for p.curTok.Type == lexer.AT {
		start := p.curTok.Span
		p.nextToken() // consume '@'

		target := p.parsePathExpression()
		if target == nil {
			break
		}

		var args []ast.Expr
		end := target.Span()
		if p.curTok.Type == lexer.LPAREN {
			p.nextToken() // consume '('
			if p.curTok.Type != lexer.RPAREN {
				args = p.parseExpressionList()
			}
			end = p.curTok.Span
			if !p.expect(lexer.RPAREN) {
				return decorators
			}
		}

		decorators = append(decorators, ast.NewDecoratorExpression(target, args, mergeSpan(start, end)))
	}

	return decorators
}

// parseImportStatement parses `import A, B;`.
func (p *Parser) parseImportStatement() ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'import'

	var names []*ast.Identifier
	for {
		if p.curTok.Type != lexer.IDENT {
			p.reportError("expected imported name", p.curTok.Span)
			return nil
		}
		names = append(names, ast.NewIdentifier(p.curTok.Value, p.curTok.Span))
		p.nextToken()

		if p.curTok.Type != lexer.COMMA {
			break
		}
		p.nextToken() // consume ','
	}

	end := p.curTok.Span
	if !p.expect(lexer.SEMICOLON) {
		return nil
	}

	return ast.NewImportStatement(names, mergeSpan(start, end))
}

// parseModelStatement parses either the alias form `model X = expr;` or the
// body form `model X<T, U> extends A, B { ... }`.
func (p *Parser) parseModelStatement(decorators []*ast.DecoratorExpression) ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'model'

	if p.curTok.Type != lexer.IDENT {
		p.reportError("expected model name", p.curTok.Span)
		return nil
	}

	model := ast.NewModelStatement(ast.NewIdentifier(p.curTok.Value, p.curTok.Span), start)
	model.Decorators = decorators
	p.nextToken()

	if p.curTok.Type == lexer.LT {
		params, ok := p.parseTemplateParameters()
		if !ok {
			return nil
		}
		model.TemplateParameters = params
	}

	switch p.curTok.Type {
	case lexer.ASSIGN:
		p.nextToken() // consume '='
		value := p.parseExpression()
		if value == nil {
			return nil
		}
		model.Assignment = value
		end := p.curTok.Span
		if !p.expect(lexer.SEMICOLON) {
			return nil
		}
		model.SetSpan(mergeSpan(start, end))
		return model

	case lexer.EXTENDS:
		p.nextToken() // consume 'extends'
		model.Extends = p.parseExpressionList()
		if model.Extends == nil {
			return nil
		}
		fallthrough

	case lexer.LBRACE:
		props, endSpan, ok := p.parseModelBody()
		if !ok {
			return nil
		}
		model.Properties = props
		if p.curTok.Type == lexer.SEMICOLON {
			endSpan = p.curTok.Span
			p.nextToken()
		}
		model.SetSpan(mergeSpan(start, endSpan))
		return model

	default:
		p.reportError("expected '=', 'extends', or '{' in model declaration", p.curTok.Span)
		return nil
	}
}

// parseTemplateParameters parses `<T, U>`.
func (p *Parser) parseTemplateParameters() ([]*ast.TemplateParameterDeclaration, bool) {
	p.nextToken() // consume '<'

	var params []*ast.TemplateParameterDeclaration
	for {
		if p.curTok.Type != lexer.IDENT {
			p.reportError("expected template parameter name", p.curTok.Span)
			return nil, false
		}
		name := ast.NewIdentifier(p.curTok.Value, p.curTok.Span)
		params = append(params, ast.NewTemplateParameterDeclaration(name, p.curTok.Span))
		p.nextToken()

		if p.curTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expect(lexer.GT) {
		return nil, false
	}
	return params, true
}

// parseModelBody parses `{ prop; ...Spread; other: T }`. Properties may be
// separated by ';' or ','; a trailing separator is allowed.
func (p *Parser) parseModelBody() ([]ast.ModelPropertyItem, lexer.Span, bool) {
	if !p.expect(lexer.LBRACE) {
		return nil, lexer.Span{}, false
	}

	var items []ast.ModelPropertyItem
	for p.curTok.Type != lexer.RBRACE && p.curTok.Type != lexer.EOF {
		if p.curTok.Type == lexer.ELLIPSIS {
			start := p.curTok.Span
			p.nextToken() // consume '...'
			target := p.parseExpression()
			if target == nil {
				return nil, lexer.Span{}, false
			}
			items = append(items, ast.NewModelSpreadProperty(target, mergeSpan(start, target.Span())))
		} else {
			prop := p.parseModelProperty()
			if prop == nil {
				return nil, lexer.Span{}, false
			}
			items = append(items, prop)
		}

		if p.curTok.Type == lexer.SEMICOLON || p.curTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}

	end := p.curTok.Span
	if !p.expect(lexer.RBRACE) {
		return nil, lexer.Span{}, false
	}
	return items, end, true
}

// parseModelProperty parses `@dec name?: type`.
func (p *Parser) parseModelProperty() *ast.ModelProperty {
	decorators := p.parseDecorators()

	if p.curTok.Type != lexer.IDENT {
		p.reportError("expected property name", p.curTok.Span)
		return nil
	}
	start := p.curTok.Span
	name := ast.NewIdentifier(p.curTok.Value, p.curTok.Span)
	p.nextToken()

	optional := false
	if p.curTok.Type == lexer.QUESTION {
		optional = true
		p.nextToken()
	}

	if !p.expect(lexer.COLON) {
		return nil
	}

	value := p.parseExpression()
	if value == nil {
		return nil
	}

	prop := ast.NewModelProperty(name, optional, value, mergeSpan(start, value.Span()))
	prop.Decorators = decorators
	return prop
}

// parseNamespaceStatement parses
// `namespace Name(signature) { member(params): T; ... }`.
func (p *Parser) parseNamespaceStatement(decorators []*ast.DecoratorExpression) ast.Stmt {
	start := p.curTok.Span
	p.nextToken() // consume 'namespace'

	if p.curTok.Type != lexer.IDENT {
		p.reportError("expected namespace name", p.curTok.Span)
		return nil
	}

	ns := ast.NewNamespaceStatement(ast.NewIdentifier(p.curTok.Value, p.curTok.Span), start)
	ns.Decorators = decorators
	p.nextToken()

	if p.curTok.Type == lexer.LPAREN {
		params, ok := p.parseParameterList()
		if !ok {
			return nil
		}
		ns.Parameters = params
	}

	if !p.expect(lexer.LBRACE) {
		return nil
	}

	for p.curTok.Type != lexer.RBRACE && p.curTok.Type != lexer.EOF {
		member := p.parseNamespaceProperty()
		if member == nil {
			return nil
		}
		ns.Properties = append(ns.Properties, member)

		if p.curTok.Type == lexer.SEMICOLON || p.curTok.Type == lexer.COMMA {
			p.nextToken()
		}
	}

	end := p.curTok.Span
	if !p.expect(lexer.RBRACE) {
		return nil
	}

	ns.SetSpan(mergeSpan(start, end))
	return ns
}

// parseNamespaceProperty parses `@dec name(params): returnType`.
func (p *Parser) parseNamespaceProperty() *ast.NamespaceProperty {
	decorators := p.parseDecorators()

	if p.curTok.Type != lexer.IDENT {
		p.reportError("expected namespace member name", p.curTok.Span)
		return nil
	}
	start := p.curTok.Span
	name := ast.NewIdentifier(p.curTok.Value, p.curTok.Span)
	p.nextToken()

	params, ok := p.parseParameterList()
	if !ok {
		return nil
	}

	if !p.expect(lexer.COLON) {
		return nil
	}

	ret := p.parseExpression()
	if ret == nil {
		return nil
	}

	member := ast.NewNamespaceProperty(name, params, ret, mergeSpan(start, ret.Span()))
	member.Decorators = decorators
	return member
}

// parseParameterList parses `(name: type, other?: type)`.
func (p *Parser) parseParameterList() ([]*ast.ModelProperty, bool) {
	if !p.expect(lexer.LPAREN) {
		return nil, false
	}

	params := []*ast.ModelProperty{}
	for p.curTok.Type != lexer.RPAREN && p.curTok.Type != lexer.EOF {
		param := p.parseModelProperty()
		if param == nil {
			return nil, false
		}
		params = append(params, param)

		if p.curTok.Type == lexer.COMMA {
			p.nextToken()
			continue
		}
		break
	}

	if !p.expect(lexer.RPAREN) {
		return nil, false
	}
	return params, true
}
