// Package ast defines the untyped syntax tree produced by internal/parser
// and, in place, annotated by internal/semantic into the typed tree consumed
// by internal/emit.
//
// Parsing itself is an external collaborator: this package only
// fixes the node shapes both sides agree on.
package ast

import (
	"github.com/lumalang/luma/internal/token"
	"github.com/lumalang/luma/internal/types"
)

// Node is implemented by every AST node; it exists purely for diagnostics.
type Node interface {
	Position() token.Position
}

// TypeExprKind names a reference-form type the checker has not yet resolved.
type TypeExprKind int

const (
	TUnknown TypeExprKind = iota
	TInteger
	TNumber
	TString
	TBool
	TIdentifier
	TArray
)

// TypeExpr is the lightweight reference-form type used inside the AST to
// name a type before resolution. Identifier forms are resolved into
// canonical types.Type values by the checker via TypeCollection.Lookup.
type TypeExpr struct {
	Kind TypeExprKind
	Name string    // set when Kind == TIdentifier
	Of   *TypeExpr // set when Kind == TArray
	Pos  token.Position
}

func (t *TypeExpr) Position() token.Position { return t.Pos }

func (t *TypeExpr) String() string {
	switch t.Kind {
	case TInteger:
		return "int"
	case TNumber:
		return "number"
	case TString:
		return "string"
	case TBool:
		return "bool"
	case TIdentifier:
		return t.Name
	case TArray:
		return "[]" + t.Of.String()
	default:
		return "<unknown>"
	}
}

// ExprBase is embedded by every concrete expression node to provide position
// storage and the Type slot the checker fills in. Its fields are exported so
// internal/parser can populate them directly via struct literals.
type ExprBase struct {
	Pos token.Position
	Typ *types.Type
}

func (b *ExprBase) Position() token.Position { return b.Pos }

// GetType returns the checker-assigned type of an expression. It is nil
// until semantic analysis has run.
func (b *ExprBase) GetType() *types.Type { return b.Typ }

// SetType records the checker-assigned type of an expression.
func (b *ExprBase) SetType(t *types.Type) { b.Typ = t }

// Expr is the sum type of all expression nodes.
type Expr interface {
	Node
	GetType() *types.Type
	SetType(*types.Type)
	exprNode()
}
