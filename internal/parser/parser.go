// Package parser implements a precedence-climbing (Pratt) parser that turns
// a internal/lexer token stream into the untyped internal/ast tree.
//
// Parsing produces the untyped AST the checker consumes; this package
// exists so the repository has a real front end to drive the core
// pipeline end to end.
package parser

import (
	"fmt"

	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/lexer"
	"github.com/lumalang/luma/internal/token"
)

// Precedence levels, lowest to highest:
// `||`,`&&` (1) < comparisons (2) < `+`,`-` (3) < `*`,`/` (4).
const (
	_ int = iota
	LOWEST
	ASSIGNMENT
	LOGICAL
	COMPARE
	SUM
	PRODUCT
	PREFIX
	CALL
)

var precedences = map[token.Kind]int{
	token.ASSIGN:   ASSIGNMENT,
	token.AND:      LOGICAL,
	token.OR:       LOGICAL,
	token.EQ:       COMPARE,
	token.NEQ:      COMPARE,
	token.LT:       COMPARE,
	token.GT:       COMPARE,
	token.LEQ:      COMPARE,
	token.GEQ:      COMPARE,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   CALL,
	token.LBRACKET: CALL,
	token.DOT:      CALL,
}

// Error is a single parse error with its source location.
type Error struct {
	Kind string
	Msg  string
	Pos  token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Msg)
}

// Parser turns a token stream into an ast.Program.
type Parser struct {
	l   *lexer.Lexer
	cur token.Token
	pk  token.Token

	errors []*Error

	// noStructLit suppresses `Ident { ... }` object-literal parsing while
	// parsing an if/while condition, mirroring the classic "no composite
	// literal in a control-flow header" ambiguity resolution.
	noStructLit bool
}

// New creates a Parser reading tokens from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.pk
	p.pk = p.l.Next()
}

// Errors returns all parse errors accumulated while consuming the program.
// The first error aborts the enclosing phase, so Errors will contain
// exactly one entry in that case.
func (p *Parser) Errors() []*Error { return p.errors }

func (p *Parser) errorf(kind string, pos token.Position, format string, args ...any) {
	if len(p.errors) > 0 {
		return
	}
	p.errors = append(p.errors, &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: pos})
}

func (p *Parser) expect(k token.Kind) bool {
	if p.cur.Kind == k {
		p.next()
		return true
	}
	p.errorf("ExpectedToken", p.cur.Pos, "expected %s, got %s", k, p.cur.Kind)
	return false
}

// ParseProgram parses a single-package, single-file program: the minimal
// shape the Program/Package/File model requires for a standalone script.
func ParseProgram(input string) (*ast.Program, []*Error) {
	p := New(lexer.New(input))
	file := ast.NewFile(nil)

	for p.cur.Kind != token.EOF && len(p.errors) == 0 {
		switch p.cur.Kind {
		case token.FUNC:
			if fn := p.parseFuncDecl(); fn != nil {
				file.Functions = append(file.Functions, fn)
			}
		case token.STRUCT:
			if sd := p.parseStructDecl(); sd != nil {
				file.Structs = append(file.Structs, sd)
			}
		case token.ENUM:
			if ed := p.parseEnumDecl(); ed != nil {
				file.Enums = append(file.Enums, ed)
			}
		default:
			p.errorf("ExpectedTopLevelDefinition", p.cur.Pos, "expected func/struct/enum, got %s", p.cur.Kind)
		}
	}

	program := &ast.Program{Packages: []*ast.Package{{ID: "main", Files: []*ast.File{file}}}}
	return program, p.errors
}
