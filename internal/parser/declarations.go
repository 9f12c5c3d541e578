package parser

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/token"
)

// parseTypeExpr parses a reference-form type: a scalar keyword, `[]T`, or a
// bare identifier (resolved to a struct/enum by the checker later).
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	pos := p.cur.Pos
	switch p.cur.Kind {
	case token.INT_TYPE:
		p.next()
		return &ast.TypeExpr{Kind: ast.TInteger, Pos: pos}
	case token.NUMBER_TYPE:
		p.next()
		return &ast.TypeExpr{Kind: ast.TNumber, Pos: pos}
	case token.STRING_TYPE:
		p.next()
		return &ast.TypeExpr{Kind: ast.TString, Pos: pos}
	case token.BOOL_TYPE:
		p.next()
		return &ast.TypeExpr{Kind: ast.TBool, Pos: pos}
	case token.LBRACKET:
		p.next()
		if !p.expect(token.RBRACKET) {
			return nil
		}
		of := p.parseTypeExpr()
		return &ast.TypeExpr{Kind: ast.TArray, Of: of, Pos: pos}
	case token.IDENT:
		name := p.cur.Literal
		p.next()
		return &ast.TypeExpr{Kind: ast.TIdentifier, Name: name, Pos: pos}
	default:
		p.errorf("ExpectedToken", pos, "expected a type, got %s", p.cur.Kind)
		return nil
	}
}

// parseParams parses `(name: T, name: T, ...)`.
func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	if !p.expect(token.LPAREN) {
		return nil
	}
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		if p.cur.Kind != token.IDENT {
			p.errorf("ExpectedToken", p.cur.Pos, "expected parameter name, got %s", p.cur.Kind)
			return nil
		}
		name := p.cur.Literal
		p.next()
		if !p.expect(token.COLON) {
			return nil
		}
		annotation := p.parseTypeExpr()
		params = append(params, ast.Param{Name: name, Annotation: annotation})

		if p.cur.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	if !p.expect(token.RPAREN) {
		return nil
	}
	return params
}

// parseFuncDecl parses `func name(...) [: T] { ... }` or the method form
// `func Receiver.name(...) [: T] { ... }`.
func (p *Parser) parseFuncDecl() *ast.FuncDecl {
	pos := p.cur.Pos
	p.next() // consume 'func'

	if p.cur.Kind != token.IDENT {
		p.errorf("ExpectedToken", p.cur.Pos, "expected function name, got %s", p.cur.Kind)
		return nil
	}
	first := p.cur.Literal
	p.next()

	receiver := ""
	name := first
	if p.cur.Kind == token.DOT {
		p.next()
		if p.cur.Kind != token.IDENT {
			p.errorf("ExpectedToken", p.cur.Pos, "expected method name, got %s", p.cur.Kind)
			return nil
		}
		receiver = first
		name = p.cur.Literal
		p.next()
	}

	params := p.parseParams()

	var ret *ast.TypeExpr
	if p.cur.Kind == token.COLON {
		p.next()
		ret = p.parseTypeExpr()
	}

	body := p.parseBlock()

	return &ast.FuncDecl{Pos: pos, Name: name, Receiver: receiver, Params: params, ReturnType: ret, Body: body}
}

// parseStructDecl parses `struct Name { field: T; ... }`.
func (p *Parser) parseStructDecl() *ast.StructDecl {
	pos := p.cur.Pos
	p.next() // consume 'struct'

	if p.cur.Kind != token.IDENT {
		p.errorf("ExpectedToken", p.cur.Pos, "expected struct name, got %s", p.cur.Kind)
		return nil
	}
	name := p.cur.Literal
	p.next()

	if !p.expect(token.LBRACE) {
		return nil
	}

	var fields []ast.FieldDecl
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		fpos := p.cur.Pos
		if p.cur.Kind != token.IDENT {
			p.errorf("ExpectedToken", p.cur.Pos, "expected field name, got %s", p.cur.Kind)
			return nil
		}
		fname := p.cur.Literal
		p.next()
		if !p.expect(token.COLON) {
			return nil
		}
		annotation := p.parseTypeExpr()
		fields = append(fields, ast.FieldDecl{Pos: fpos, Name: fname, Annotation: annotation})

		if p.cur.Kind == token.COMMA || p.cur.Kind == token.SEMI {
			p.next()
		}
	}
	if !p.expect(token.RBRACE) {
		return nil
	}

	return &ast.StructDecl{Pos: pos, Name: name, Fields: fields}
}

// parseEnumDecl parses `enum Name { Variant[(T, T, ...)], ... }`.
func (p *Parser) parseEnumDecl() *ast.EnumDecl {
	pos := p.cur.Pos
	p.next() // consume 'enum'

	if p.cur.Kind != token.IDENT {
		p.errorf("ExpectedToken", p.cur.Pos, "expected enum name, got %s", p.cur.Kind)
		return nil
	}
	name := p.cur.Literal
	p.next()

	if !p.expect(token.LBRACE) {
		return nil
	}

	var variants []ast.EnumVariant
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF {
		vpos := p.cur.Pos
		if p.cur.Kind != token.IDENT {
			p.errorf("ExpectedToken", p.cur.Pos, "expected variant name, got %s", p.cur.Kind)
			return nil
		}
		vname := p.cur.Literal
		p.next()

		var payload []*ast.TypeExpr
		if p.cur.Kind == token.LPAREN {
			p.next()
			for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
				payload = append(payload, p.parseTypeExpr())
				if p.cur.Kind == token.COMMA {
					p.next()
					continue
				}
				break
			}
			if !p.expect(token.RPAREN) {
				return nil
			}
		}

		variants = append(variants, ast.EnumVariant{Pos: vpos, Name: vname, Payload: payload})

		if p.cur.Kind == token.COMMA {
			p.next()
		}
	}
	if !p.expect(token.RBRACE) {
		return nil
	}

	return &ast.EnumDecl{Pos: pos, Name: name, Variants: variants}
}
