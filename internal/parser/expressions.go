package parser

import (
	"strconv"

	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/token"
)

// parseExpression implements precedence climbing: it parses a prefix
// expression, then keeps folding in infix/postfix operators whose
// precedence exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expr {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for minPrec < p.peekPrecedence() && len(p.errors) == 0 {
		switch p.cur.Kind {
		case token.LPAREN:
			left = p.parseCall(left)
		case token.LBRACKET:
			left = p.parseSubscript(left)
		case token.DOT:
			left = p.parseSelector(left)
		case token.ASSIGN:
			left = p.parseAssign(left)
		default:
			left = p.parseBinary(left)
		}
	}
	return left
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.cur.Kind]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) parsePrefix() ast.Expr {
	pos := p.cur.Pos
	switch p.cur.Kind {
	case token.INT:
		lit := p.cur.Literal
		p.next()
		v, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			p.errorf("InvalidLiteral", pos, "invalid integer literal %q", lit)
			return nil
		}
		return &ast.IntLit{ExprBase: ast.ExprBase{Pos: pos}, Value: v}

	case token.NUMBER:
		lit := p.cur.Literal
		p.next()
		v, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			p.errorf("InvalidLiteral", pos, "invalid number literal %q", lit)
			return nil
		}
		return &ast.NumberLit{ExprBase: ast.ExprBase{Pos: pos}, Value: v}

	case token.STRING:
		lit := p.cur.Literal
		p.next()
		return &ast.StringLit{ExprBase: ast.ExprBase{Pos: pos}, Value: lit}

	case token.TRUE:
		p.next()
		return &ast.BoolLit{ExprBase: ast.ExprBase{Pos: pos}, Value: true}

	case token.FALSE:
		p.next()
		return &ast.BoolLit{ExprBase: ast.ExprBase{Pos: pos}, Value: false}

	case token.SELF:
		p.next()
		return &ast.SelfExpr{ExprBase: ast.ExprBase{Pos: pos}}

	case token.IDENT:
		name := p.cur.Literal
		p.next()
		if p.cur.Kind == token.LBRACE && !p.noStructLit {
			return p.parseObjectLit(name, pos)
		}
		return &ast.IdentExpr{ExprBase: ast.ExprBase{Pos: pos}, Name: name}

	case token.NOT:
		p.next()
		operand := p.parseExpression(PREFIX)
		return &ast.UnaryExpr{ExprBase: ast.ExprBase{Pos: pos}, Op: token.NOT, Operand: operand}

	case token.MINUS:
		p.next()
		operand := p.parseExpression(PREFIX)
		return &ast.UnaryExpr{ExprBase: ast.ExprBase{Pos: pos}, Op: token.MINUS, Operand: operand}

	case token.LPAREN:
		p.next()
		inner := p.parseExpression(LOWEST)
		p.expect(token.RPAREN)
		return inner

	case token.LBRACKET:
		return p.parseArrayLit(pos)

	default:
		p.errorf("ExpectedExpression", pos, "expected an expression, got %s", p.cur.Kind)
		return nil
	}
}

func (p *Parser) parseArrayLit(pos token.Position) ast.Expr {
	p.next() // consume '['
	var elems []ast.Expr
	for p.cur.Kind != token.RBRACKET && p.cur.Kind != token.EOF {
		elems = append(elems, p.parseExpression(LOWEST))
		if p.cur.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	p.expect(token.RBRACKET)
	return &ast.ArrayLit{ExprBase: ast.ExprBase{Pos: pos}, Elements: elems}
}

func (p *Parser) parseObjectLit(typeName string, pos token.Position) ast.Expr {
	p.next() // consume '{'
	var fields []ast.ObjectField
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
		value := p.parseExpression(LOWEST)
		fields = append(fields, ast.ObjectField{Name: fname, Value: value, Pos: fpos})

		if p.cur.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	p.expect(token.RBRACE)
	return &ast.ObjectLit{ExprBase: ast.ExprBase{Pos: pos}, TypeName: typeName, Fields: fields}
}

func (p *Parser) parseCall(callee ast.Expr) ast.Expr {
	pos := callee.Position()
	p.next() // consume '('
	var args []ast.Expr
	for p.cur.Kind != token.RPAREN && p.cur.Kind != token.EOF {
		args = append(args, p.parseExpression(LOWEST))
		if p.cur.Kind == token.COMMA {
			p.next()
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return &ast.CallExpr{ExprBase: ast.ExprBase{Pos: pos}, Callee: callee, Args: args}
}

func (p *Parser) parseSubscript(array ast.Expr) ast.Expr {
	pos := array.Position()
	p.next() // consume '['
	index := p.parseExpression(LOWEST)
	p.expect(token.RBRACKET)
	return &ast.SubscriptExpr{ExprBase: ast.ExprBase{Pos: pos}, Array: array, Index: index}
}

func (p *Parser) parseSelector(receiver ast.Expr) ast.Expr {
	pos := receiver.Position()
	p.next() // consume '.'
	if p.cur.Kind != token.IDENT {
		p.errorf("ExpectedToken", p.cur.Pos, "expected a field or method name, got %s", p.cur.Kind)
		return nil
	}
	name := p.cur.Literal
	p.next()
	return &ast.SelectorExpr{ExprBase: ast.ExprBase{Pos: pos}, Receiver: receiver, Name: name}
}

func (p *Parser) parseAssign(target ast.Expr) ast.Expr {
	pos := target.Position()
	p.next() // consume '='
	value := p.parseExpression(ASSIGNMENT - 1)
	return &ast.AssignExpr{ExprBase: ast.ExprBase{Pos: pos}, Target: target, Value: value}
}

func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	op := p.cur.Kind
	pos := left.Position()
	prec := precedences[op]
	p.next()
	right := p.parseExpression(prec)
	return &ast.BinaryExpr{ExprBase: ast.ExprBase{Pos: pos}, Op: op, Left: left, Right: right}
}
