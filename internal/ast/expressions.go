package ast

import "github.com/lumalang/luma/internal/token"

// BinaryExpr is `Left Op Right`: arithmetic, comparison, or logical.
type BinaryExpr struct {
	ExprBase
	Op    token.Kind
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// UnaryExpr is a prefix operator applied to Operand (`not x`, `-x`).
type UnaryExpr struct {
	ExprBase
	Op      token.Kind
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

// AssignExpr is `Target = Value`; its result is the assigned value.
type AssignExpr struct {
	ExprBase
	Target Expr
	Value  Expr
}

func (*AssignExpr) exprNode() {}

// CallExpr is a function/method call or an enum variant construction.
//
// SymbolName is set by the checker to the mangled callee for a direct call
// (free function or method). EnumIdx/IsEnumCtor are set instead when this
// "call" is actually constructing an enum variant.
type CallExpr struct {
	ExprBase
	Callee     Expr
	Args       []Expr
	SymbolName string
	EnumIdx    int
	IsEnumCtor bool
}

func (*CallExpr) exprNode() {}

// IntLit is an integer literal.
type IntLit struct {
	ExprBase
	Value int64
}

func (*IntLit) exprNode() {}

// NumberLit is a floating-point literal.
type NumberLit struct {
	ExprBase
	Value float64
}

func (*NumberLit) exprNode() {}

// BoolLit is a boolean literal.
type BoolLit struct {
	ExprBase
	Value bool
}

func (*BoolLit) exprNode() {}

// StringLit is a string literal.
type StringLit struct {
	ExprBase
	Value string
}

func (*StringLit) exprNode() {}

// IdentExpr references a local variable, or (only in selector/call position)
// a struct or enum type name.
type IdentExpr struct {
	ExprBase
	Name string
}

func (*IdentExpr) exprNode() {}

// SubscriptExpr is `Array[Index]`.
type SubscriptExpr struct {
	ExprBase
	Array Expr
	Index Expr
}

func (*SubscriptExpr) exprNode() {}

// SelectorExpr is `Receiver.Name`: a struct field access or an enum variant
// reference. FieldIdx is set by the checker for struct fields, EnumIdx for
// enum variants.
type SelectorExpr struct {
	ExprBase
	Receiver      Expr
	Name          string
	FieldIdx      int
	EnumIdx       int
	IsEnumVariant bool
}

func (*SelectorExpr) exprNode() {}

// ArrayLit is `[e0, e1, ...]`.
type ArrayLit struct {
	ExprBase
	Elements []Expr
}

func (*ArrayLit) exprNode() {}

// ObjectField is one `name: value` entry of an ObjectLit. Idx is filled in
// by the checker with the field's positional index in the struct.
type ObjectField struct {
	Name  string
	Value Expr
	Pos   token.Position
	Idx   int
}

// ObjectLit is `TypeName { field: value, ... }`. Fields not mentioned
// receive type-appropriate zero values at emission.
type ObjectLit struct {
	ExprBase
	TypeName string
	Fields   []ObjectField
}

func (*ObjectLit) exprNode() {}

// SelfExpr is the `self` receiver reference, valid only inside methods.
type SelfExpr struct {
	ExprBase
}

func (*SelfExpr) exprNode() {}
