package emit

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/ir"
	"github.com/lumalang/luma/internal/token"
	"github.com/lumalang/luma/internal/types"
)

// lowerExpr emits code evaluating e and reports whether it left a value on
// the stack. Every expression pushes exactly one value except a call to a
// function with no return type. A CallExpr's checker-assigned type is
// types.BadType() in that case too, but emission only ever runs on an
// already fully-checked, error-free program, so a CallExpr seen here with a
// Bad result type unambiguously means "void", not "ill-typed".
func (em *Emitter) lowerExpr(b *ir.Builder, e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.IntLit:
		b.Emit(ir.Instruction{Op: ir.LoadConstInt, IntVal: x.Value})
	case *ast.NumberLit:
		b.Emit(ir.Instruction{Op: ir.LoadConstNumber, NumberVal: x.Value})
	case *ast.BoolLit:
		b.Emit(ir.Instruction{Op: ir.LoadConstBool, BoolVal: x.Value})
	case *ast.StringLit:
		ref := em.mod.Strings.Intern(x.Value)
		b.Emit(ir.Instruction{Op: ir.LoadConstString, StringRef: ref})
	case *ast.SelfExpr:
		id, _ := b.LookupVar("self")
		b.Emit(ir.Instruction{Op: ir.Load, Var: id})
	case *ast.IdentExpr:
		id, _ := b.LookupVar(x.Name)
		b.Emit(ir.Instruction{Op: ir.Load, Var: id})
	case *ast.UnaryExpr:
		em.lowerUnary(b, x)
	case *ast.BinaryExpr:
		em.lowerBinary(b, x)
	case *ast.AssignExpr:
		em.lowerAssign(b, x)
	case *ast.CallExpr:
		return em.lowerCall(b, x)
	case *ast.SubscriptExpr:
		em.lowerSubscript(b, x)
	case *ast.SelectorExpr:
		em.lowerSelector(b, x)
	case *ast.ArrayLit:
		em.lowerArrayLit(b, x)
	case *ast.ObjectLit:
		em.lowerObjectLit(b, x)
	default:
		return false
	}
	return true
}

func (em *Emitter) lowerUnary(b *ir.Builder, x *ast.UnaryExpr) {
	switch x.Op {
	case token.NOT:
		em.lowerExpr(b, x.Operand)
		b.Emit(ir.Instruction{Op: ir.Not})
	case token.MINUS:
		isNumber := x.Operand.GetType().Kind() == types.Number
		if isNumber {
			b.Emit(ir.Instruction{Op: ir.LoadConstNumber, NumberVal: 0})
		} else {
			b.Emit(ir.Instruction{Op: ir.LoadConstInt, IntVal: 0})
		}
		em.lowerExpr(b, x.Operand)
		if isNumber {
			b.Emit(ir.Instruction{Op: ir.SubNumber})
		} else {
			b.Emit(ir.Instruction{Op: ir.SubInt})
		}
	}
}

func isLogicalOp(op token.Kind) bool { return op == token.AND || op == token.OR }

func isComparisonOp(op token.Kind) bool {
	switch op {
	case token.EQ, token.NEQ, token.LT, token.GT, token.LEQ, token.GEQ:
		return true
	}
	return false
}

func arithmeticOp(op token.Kind, isNumber bool) ir.Op {
	switch op {
	case token.PLUS:
		if isNumber {
			return ir.AddNumber
		}
		return ir.AddInt
	case token.MINUS:
		if isNumber {
			return ir.SubNumber
		}
		return ir.SubInt
	case token.STAR:
		if isNumber {
			return ir.MulNumber
		}
		return ir.MulInt
	case token.SLASH:
		if isNumber {
			return ir.DivNumber
		}
		return ir.DivInt
	default:
		if isNumber {
			return ir.ModNumber
		}
		return ir.ModInt
	}
}

func comparisonOp(op token.Kind, isNumber bool) ir.Op {
	switch op {
	case token.EQ:
		if isNumber {
			return ir.EquNumber
		}
		return ir.EquInt
	case token.NEQ:
		if isNumber {
			return ir.NeqNumber
		}
		return ir.NeqInt
	case token.LT:
		if isNumber {
			return ir.LtNumber
		}
		return ir.LtInt
	case token.GT:
		if isNumber {
			return ir.GtNumber
		}
		return ir.GtInt
	case token.LEQ:
		if isNumber {
			return ir.LeqNumber
		}
		return ir.LeqInt
	default:
		if isNumber {
			return ir.GeqNumber
		}
		return ir.GeqInt
	}
}

// lowerBinary evaluates both operands, promoting an Integer operand to
// Number when the other operand is Number, then picks the Int or Number
// opcode family accordingly. Without the promotion a mixed int/number
// comparison or arithmetic op would compare or combine raw bit patterns of
// different widths.
func (em *Emitter) lowerBinary(b *ir.Builder, x *ast.BinaryExpr) {
	if isLogicalOp(x.Op) {
		em.lowerExpr(b, x.Left)
		em.lowerExpr(b, x.Right)
		if x.Op == token.AND {
			b.Emit(ir.Instruction{Op: ir.And})
		} else {
			b.Emit(ir.Instruction{Op: ir.Or})
		}
		return
	}

	leftType := x.Left.GetType()
	rightType := x.Right.GetType()
	isNumber := leftType.Kind() == types.Number || rightType.Kind() == types.Number

	em.lowerExpr(b, x.Left)
	if isNumber && leftType.Kind() == types.Integer {
		b.Emit(ir.Instruction{Op: ir.Promote})
	}
	em.lowerExpr(b, x.Right)
	if isNumber && rightType.Kind() == types.Integer {
		b.Emit(ir.Instruction{Op: ir.Promote})
	}

	if isComparisonOp(x.Op) {
		b.Emit(ir.Instruction{Op: comparisonOp(x.Op, isNumber)})
	} else {
		b.Emit(ir.Instruction{Op: arithmeticOp(x.Op, isNumber)})
	}
}

// lowerAssign leaves the assigned value on the stack, since an AssignExpr
// is itself an expression whose result is that value.
func (em *Emitter) lowerAssign(b *ir.Builder, x *ast.AssignExpr) {
	em.lowerExpr(b, x.Value)

	switch target := x.Target.(type) {
	case *ast.IdentExpr:
		id, _ := b.LookupVar(target.Name)
		b.Emit(ir.Instruction{Op: ir.Tee, Var: id})
	case *ast.SubscriptExpr:
		b.Emit(ir.Instruction{Op: ir.Dup, K: 0})
		em.lowerExpr(b, target.Index)
		em.lowerExpr(b, target.Array)
		b.Emit(ir.Instruction{Op: ir.StoreArray, ElemType: target.GetType()})
	case *ast.SelectorExpr:
		b.Emit(ir.Instruction{Op: ir.Dup, K: 0})
		em.lowerExpr(b, target.Receiver)
		b.Emit(ir.Instruction{Op: ir.SetObject, Idx: target.FieldIdx, FieldType: target.GetType()})
	}
}

func (em *Emitter) lowerSubscript(b *ir.Builder, x *ast.SubscriptExpr) {
	em.lowerExpr(b, x.Index)
	em.lowerExpr(b, x.Array)
	b.Emit(ir.Instruction{Op: ir.LoadArray, ElemType: x.GetType()})
}

// lowerSelector handles a bare field access or a nilary enum-variant
// reference (`Color.Red` used as a value, not a call). For the enum case
// the receiver names a type, not a runtime value, so it is never lowered:
// the variant object is constructed directly from its tag and the
// variant's (here necessarily empty or defaultable) payload types.
func (em *Emitter) lowerSelector(b *ir.Builder, x *ast.SelectorExpr) {
	if x.IsEnumVariant {
		enumType := x.GetType()
		payload := enumType.Variants()[x.EnumIdx].Payload
		b.Emit(ir.Instruction{Op: ir.NewObject, N: 1 + len(payload)})
		b.Emit(ir.Instruction{Op: ir.LoadConstInt, IntVal: int64(x.EnumIdx)})
		b.Emit(ir.Instruction{Op: ir.Dup, K: 1})
		b.Emit(ir.Instruction{Op: ir.SetObject, Idx: 0, FieldType: types.IntegerType()})
		for i, pt := range payload {
			em.defaultValue(b, pt)
			b.Emit(ir.Instruction{Op: ir.Dup, K: 1})
			b.Emit(ir.Instruction{Op: ir.SetObject, Idx: i + 1, FieldType: pt})
		}
		return
	}

	em.lowerExpr(b, x.Receiver)
	b.Emit(ir.Instruction{Op: ir.GetObject, Idx: x.FieldIdx, FieldType: x.GetType()})
}

// lowerCall handles a free-function call, a method call, and an enum
// variant construction (`Shape.Circle(r)`), which the checker also
// represents as a CallExpr. The enum-ctor receiver, like the bare-selector
// case above, names a type and is never lowered.
func (em *Emitter) lowerCall(b *ir.Builder, x *ast.CallExpr) bool {
	b.Emit(ir.Instruction{Op: ir.CheckYield})

	if x.IsEnumCtor {
		b.Emit(ir.Instruction{Op: ir.NewObject, N: 1 + len(x.Args)})
		b.Emit(ir.Instruction{Op: ir.LoadConstInt, IntVal: int64(x.EnumIdx)})
		b.Emit(ir.Instruction{Op: ir.Dup, K: 1})
		b.Emit(ir.Instruction{Op: ir.SetObject, Idx: 0, FieldType: types.IntegerType()})
		for i, arg := range x.Args {
			em.lowerExpr(b, arg)
			b.Emit(ir.Instruction{Op: ir.Dup, K: 1})
			b.Emit(ir.Instruction{Op: ir.SetObject, Idx: i + 1, FieldType: arg.GetType()})
		}
		return true
	}

	if sel, ok := x.Callee.(*ast.SelectorExpr); ok {
		em.lowerExpr(b, sel.Receiver)
	}
	for _, arg := range x.Args {
		em.lowerExpr(b, arg)
	}
	b.Emit(ir.Instruction{Op: ir.Call, Symbol: x.SymbolName})

	result := x.GetType()
	return result != nil && result.Kind() != types.Bad
}

func (em *Emitter) lowerArrayLit(b *ir.Builder, x *ast.ArrayLit) {
	elemType := x.GetType().Elem()
	b.Emit(ir.Instruction{Op: ir.NewArray, N: len(x.Elements), ElemType: elemType})
	for i, el := range x.Elements {
		em.lowerExpr(b, el)
		b.Emit(ir.Instruction{Op: ir.LoadConstInt, IntVal: int64(i)})
		b.Emit(ir.Instruction{Op: ir.Dup, K: 2})
		b.Emit(ir.Instruction{Op: ir.StoreArray, ElemType: elemType})
	}
}

func (em *Emitter) lowerObjectLit(b *ir.Builder, x *ast.ObjectLit) {
	st := x.GetType()
	fields := st.Fields()

	provided := make(map[int]*ast.ObjectField, len(x.Fields))
	for i := range x.Fields {
		provided[x.Fields[i].Idx] = &x.Fields[i]
	}

	b.Emit(ir.Instruction{Op: ir.NewObject, N: len(fields)})
	for i, f := range fields {
		if of, ok := provided[i]; ok {
			em.lowerExpr(b, of.Value)
		} else {
			em.defaultValue(b, f.Type)
		}
		b.Emit(ir.Instruction{Op: ir.Dup, K: 1})
		b.Emit(ir.Instruction{Op: ir.SetObject, Idx: i, FieldType: f.Type})
	}
}

// defaultValue pushes the zero value of t: 0 / 0.0 / false / the interned
// empty string / an empty array for scalars, arrays, and strings; a
// recursively zeroed object for a struct; and the first-declared variant,
// itself recursively zeroed, for an enum.
func (em *Emitter) defaultValue(b *ir.Builder, t *types.Type) {
	switch t.Kind() {
	case types.Integer:
		b.Emit(ir.Instruction{Op: ir.LoadConstInt, IntVal: 0})
	case types.Number:
		b.Emit(ir.Instruction{Op: ir.LoadConstNumber, NumberVal: 0})
	case types.Bool:
		b.Emit(ir.Instruction{Op: ir.LoadConstBool, BoolVal: false})
	case types.String:
		ref := em.mod.Strings.Intern("")
		b.Emit(ir.Instruction{Op: ir.LoadConstString, StringRef: ref})
	case types.Array:
		b.Emit(ir.Instruction{Op: ir.NewArray, N: 0, ElemType: t.Elem()})
	case types.Struct:
		fields := t.Fields()
		b.Emit(ir.Instruction{Op: ir.NewObject, N: len(fields)})
		for i, f := range fields {
			em.defaultValue(b, f.Type)
			b.Emit(ir.Instruction{Op: ir.Dup, K: 1})
			b.Emit(ir.Instruction{Op: ir.SetObject, Idx: i, FieldType: f.Type})
		}
	case types.Enum:
		payload := t.Variants()[0].Payload
		b.Emit(ir.Instruction{Op: ir.NewObject, N: 1 + len(payload)})
		b.Emit(ir.Instruction{Op: ir.LoadConstInt, IntVal: 0})
		b.Emit(ir.Instruction{Op: ir.Dup, K: 1})
		b.Emit(ir.Instruction{Op: ir.SetObject, Idx: 0, FieldType: types.IntegerType()})
		for i, pt := range payload {
			em.defaultValue(b, pt)
			b.Emit(ir.Instruction{Op: ir.Dup, K: 1})
			b.Emit(ir.Instruction{Op: ir.SetObject, Idx: i + 1, FieldType: pt})
		}
	default:
		b.Emit(ir.Instruction{Op: ir.LoadConstInt, IntVal: 0})
	}
}
