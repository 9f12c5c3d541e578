package parser

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/token"
)

func (p *Parser) parseBlock() *ast.Block {
	pos := p.cur.Pos
	if !p.expect(token.LBRACE) {
		return &ast.Block{}
	}

	var stmts []ast.Stmt
	for p.cur.Kind != token.RBRACE && p.cur.Kind != token.EOF && len(p.errors) == 0 {
		if s := p.parseStatement(); s != nil {
			stmts = append(stmts, s)
		}
	}
	p.expect(token.RBRACE)

	b := &ast.Block{Stmts: stmts}
	b.Pos = pos
	return b
}

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case token.LET:
		return p.parseVarDecl(false)
	case token.CONST:
		return p.parseVarDecl(true)
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.RETURN:
		return p.parseReturn()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseVarDecl(isConst bool) ast.Stmt {
	pos := p.cur.Pos
	p.next() // consume 'let'/'const'

	if p.cur.Kind != token.IDENT {
		p.errorf("ExpectedToken", p.cur.Pos, "expected variable name, got %s", p.cur.Kind)
		return nil
	}
	name := p.cur.Literal
	p.next()

	var annotation *ast.TypeExpr
	if p.cur.Kind == token.COLON {
		p.next()
		annotation = p.parseTypeExpr()
	}

	if !p.expect(token.ASSIGN) {
		return nil
	}

	value := p.parseExpression(LOWEST)
	p.consumeSemi()

	return &ast.VarDecl{Pos: pos, Name: name, Annotation: annotation, Value: value, IsConst: isConst}
}

func (p *Parser) consumeSemi() {
	if p.cur.Kind == token.SEMI {
		p.next()
	}
}

func (p *Parser) parseIf() ast.Stmt {
	pos := p.cur.Pos
	p.next() // consume 'if'

	not := false
	if p.cur.Kind == token.NOT {
		not = true
		p.next()
	}

	p.noStructLit = true
	cond := p.parseExpression(LOWEST)
	p.noStructLit = false

	then := p.parseBlock()

	var elseBlock *ast.Block
	if p.cur.Kind == token.ELSE {
		p.next()
		if p.cur.Kind == token.IF {
			// `else if` desugars to a single-statement else block.
			inner := p.parseIf()
			elseBlock = &ast.Block{Stmts: []ast.Stmt{inner}}
		} else {
			elseBlock = p.parseBlock()
		}
	}

	return &ast.If{Pos: pos, Not: not, Cond: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseWhile() ast.Stmt {
	pos := p.cur.Pos
	p.next() // consume 'while'

	p.noStructLit = true
	cond := p.parseExpression(LOWEST)
	p.noStructLit = false

	body := p.parseBlock()
	return &ast.While{Pos: pos, Cond: cond, Body: body}
}

func (p *Parser) parseReturn() ast.Stmt {
	pos := p.cur.Pos
	p.next() // consume 'return'

	var value ast.Expr
	if p.cur.Kind != token.SEMI && p.cur.Kind != token.RBRACE {
		value = p.parseExpression(LOWEST)
	}
	p.consumeSemi()

	return &ast.Return{Pos: pos, Value: value}
}

func (p *Parser) parseExprStmt() ast.Stmt {
	pos := p.cur.Pos
	expr := p.parseExpression(LOWEST)
	p.consumeSemi()
	if expr == nil {
		return nil
	}
	return &ast.ExprStmt{Pos: pos, X: expr}
}
