package semantic

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/token"
	"github.com/lumalang/luma/internal/types"
)

// checkExpr is the bidirectional expression checker: hint propagates
// through literals and array/object construction. It always
// annotates e with the type it returns, even on failure (types.BadType()),
// so callers never need to nil-check.
func (a *Analyzer) checkExpr(e ast.Expr, hint *types.Type) *types.Type {
	if a.failed() {
		return types.BadType()
	}

	var t *types.Type
	switch x := e.(type) {
	case *ast.IntLit:
		t = types.IntegerType()
	case *ast.NumberLit:
		t = types.NumberType()
	case *ast.BoolLit:
		t = types.BoolType()
	case *ast.StringLit:
		t = types.StringType()
	case *ast.SelfExpr:
		t = a.checkSelf(x)
	case *ast.IdentExpr:
		t = a.checkIdent(x)
	case *ast.UnaryExpr:
		t = a.checkUnary(x)
	case *ast.BinaryExpr:
		t = a.checkBinary(x)
	case *ast.AssignExpr:
		t = a.checkAssign(x)
	case *ast.CallExpr:
		t = a.checkCall(x)
	case *ast.SubscriptExpr:
		t = a.checkSubscript(x)
	case *ast.SelectorExpr:
		t = a.checkSelector(x)
	case *ast.ArrayLit:
		t = a.checkArrayLit(x, hint)
	case *ast.ObjectLit:
		t = a.checkObjectLit(x)
	default:
		t = types.BadType()
	}

	e.SetType(t)
	return t
}

func (a *Analyzer) checkSelf(x *ast.SelfExpr) *types.Type {
	if a.selfType == nil {
		a.fail(ErrCannotUseSelfOutsideOfMethod, x.Pos, "self is only valid inside a method")
		return types.BadType()
	}
	return a.selfType
}

func (a *Analyzer) checkIdent(x *ast.IdentExpr) *types.Type {
	if t, ok := a.curScope.lookup(x.Name); ok {
		return t
	}
	if t, ok := a.typesCol.Lookup(types.NameSpec{Package: a.pkg, Name: x.Name}); ok {
		return t
	}
	for _, imp := range a.imports {
		if t, ok := a.typesCol.Lookup(types.NameSpec{Package: imp, Name: x.Name}); ok {
			return t
		}
	}
	a.fail(ErrVariableNotFound, x.Pos, "undefined name %q", x.Name)
	return types.BadType()
}

func (a *Analyzer) checkUnary(x *ast.UnaryExpr) *types.Type {
	switch x.Op {
	case token.NOT:
		t := a.checkExpr(x.Operand, types.BoolType())
		if a.failed() {
			return types.BadType()
		}
		if t.Kind() != types.Bool {
			a.fail(ErrNonBoolInLogicalExpression, x.Pos, "'not' requires bool, got %s", t)
			return types.BadType()
		}
		return types.BoolType()
	case token.MINUS:
		t := a.checkExpr(x.Operand, nil)
		if a.failed() {
			return types.BadType()
		}
		if !types.IsNumeric(t) {
			a.fail(ErrNonNumericTypeInBinaryExpression, x.Pos, "unary '-' requires a numeric operand, got %s", t)
			return types.BadType()
		}
		return t
	default:
		a.fail(ErrNonNumericTypeInBinaryExpression, x.Pos, "unsupported unary operator")
		return types.BadType()
	}
}

func isComparisonOp(op token.Kind) bool {
	switch op {
	case token.EQ, token.NEQ, token.LT, token.GT, token.LEQ, token.GEQ:
		return true
	}
	return false
}

func isLogicalOp(op token.Kind) bool {
	return op == token.AND || op == token.OR
}

func (a *Analyzer) checkBinary(x *ast.BinaryExpr) *types.Type {
	switch {
	case isLogicalOp(x.Op):
		l := a.checkExpr(x.Left, types.BoolType())
		if a.failed() {
			return types.BadType()
		}
		r := a.checkExpr(x.Right, types.BoolType())
		if a.failed() {
			return types.BadType()
		}
		if l.Kind() != types.Bool || r.Kind() != types.Bool {
			a.fail(ErrNonBoolInLogicalExpression, x.Pos, "logical operator requires bool operands, got %s and %s", l, r)
			return types.BadType()
		}
		return types.BoolType()

	case isComparisonOp(x.Op):
		l := a.checkExpr(x.Left, nil)
		if a.failed() {
			return types.BadType()
		}
		r := a.checkExpr(x.Right, nil)
		if a.failed() {
			return types.BadType()
		}
		if !compatible(l, r) {
			a.fail(ErrIncompatibleTypesInBinaryExpression, x.Pos, "cannot compare %s and %s", l, r)
			return types.BadType()
		}
		return types.BoolType()

	default: // + - * /
		l := a.checkExpr(x.Left, nil)
		if a.failed() {
			return types.BadType()
		}
		r := a.checkExpr(x.Right, nil)
		if a.failed() {
			return types.BadType()
		}
		if !types.IsNumeric(l) || !types.IsNumeric(r) {
			a.fail(ErrNonNumericTypeInBinaryExpression, x.Pos, "arithmetic requires numeric operands, got %s and %s", l, r)
			return types.BadType()
		}
		if l.Kind() == r.Kind() {
			return l
		}
		if l.Kind() == types.Number || r.Kind() == types.Number {
			return types.NumberType()
		}
		return types.IntegerType()
	}
}

func (a *Analyzer) checkAssign(x *ast.AssignExpr) *types.Type {
	targetType := a.checkStore(x.Target)
	if a.failed() {
		return types.BadType()
	}
	valType := a.checkExpr(x.Value, targetType)
	if a.failed() {
		return types.BadType()
	}
	if !compatible(targetType, valType) {
		a.fail(ErrAssignmentTypesIncompatible, x.Pos, "cannot assign %s to %s", valType, targetType)
		return types.BadType()
	}
	return targetType
}

// checkStore implements the store-expression rules: only subscript,
// selector, or identifier targets are valid assignment destinations.
func (a *Analyzer) checkStore(e ast.Expr) *types.Type {
	switch x := e.(type) {
	case *ast.IdentExpr:
		if t, ok := a.curScope.lookup(x.Name); ok {
			x.SetType(t)
			return t
		}
		a.fail(ErrVariableNotFound, x.Pos, "undefined name %q", x.Name)
		return types.BadType()
	case *ast.SubscriptExpr:
		return a.checkSubscript(x)
	case *ast.SelectorExpr:
		return a.checkSelector(x)
	default:
		a.fail(ErrCannotUseExpressionInLeftHandExpr, e.Position(), "expression cannot be used on the left-hand side of an assignment")
		return types.BadType()
	}
}

func (a *Analyzer) checkSubscript(x *ast.SubscriptExpr) *types.Type {
	arr := a.checkExpr(x.Array, nil)
	if a.failed() {
		return types.BadType()
	}
	idx := a.checkExpr(x.Index, types.IntegerType())
	if a.failed() {
		return types.BadType()
	}
	if arr.Kind() != types.Array {
		a.fail(ErrValueIsNotIndexable, x.Pos, "%s is not indexable", arr)
		return types.BadType()
	}
	if idx.Kind() != types.Integer {
		a.fail(ErrValueCannotBeUsedAsIndex, x.Index.Position(), "index must be int, got %s", idx)
		return types.BadType()
	}
	return arr.Elem()
}

// checkSelector handles a bare selector (field access or enum-variant
// reference); selector-as-callee is handled separately by checkCall since
// it additionally needs the call's argument list.
func (a *Analyzer) checkSelector(x *ast.SelectorExpr) *types.Type {
	recv := a.checkExpr(x.Receiver, nil)
	if a.failed() {
		return types.BadType()
	}
	switch recv.Kind() {
	case types.Struct:
		idx, ft, ok := recv.FieldByName(x.Name)
		if !ok {
			a.fail(ErrStructFieldNotFound, x.Pos, "struct %s has no field %q", recv, x.Name)
			return types.BadType()
		}
		x.FieldIdx = idx
		return ft
	case types.Enum:
		idx, _, ok := recv.VariantByName(x.Name)
		if !ok {
			a.fail(ErrCannotFindVariantInEnum, x.Pos, "enum %s has no variant %q", recv, x.Name)
			return types.BadType()
		}
		x.EnumIdx = idx
		x.IsEnumVariant = true
		return recv
	default:
		a.fail(ErrInvalidUsageOfSelector, x.Pos, "cannot select %q on %s", x.Name, recv)
		return types.BadType()
	}
}

func (a *Analyzer) checkCall(x *ast.CallExpr) *types.Type {
	switch callee := x.Callee.(type) {
	case *ast.IdentExpr:
		return a.checkFreeCall(x, callee)
	case *ast.SelectorExpr:
		return a.checkSelectorCall(x, callee)
	default:
		a.fail(ErrFunctionNotFound, x.Pos, "expression is not callable")
		return types.BadType()
	}
}

func (a *Analyzer) checkFreeCall(x *ast.CallExpr, callee *ast.IdentExpr) *types.Type {
	info, ok := a.funcsCol.Lookup(types.NameSpec{Package: a.pkg, Name: callee.Name})
	if !ok {
		for _, imp := range a.imports {
			if info, ok = a.funcsCol.Lookup(types.NameSpec{Package: imp, Name: callee.Name}); ok {
				break
			}
		}
	}
	if !ok {
		a.fail(ErrFunctionNotFound, x.Pos, "function %q not found", callee.Name)
		return types.BadType()
	}

	callee.SetType(info.Sig)
	if !a.checkArgs(x, info.Sig.Params()) {
		return types.BadType()
	}
	x.SymbolName = info.SymbolName

	returns := info.Sig.Returns()
	if len(returns) == 0 {
		return types.BadType()
	}
	return returns[0]
}

func (a *Analyzer) checkSelectorCall(x *ast.CallExpr, callee *ast.SelectorExpr) *types.Type {
	recv := a.checkExpr(callee.Receiver, nil)
	if a.failed() {
		return types.BadType()
	}

	switch recv.Kind() {
	case types.Struct:
		sig, ok := recv.MethodByName(callee.Name)
		if !ok {
			a.fail(ErrCannotFindSelectorInStruct, x.Pos, "struct %s has no method %q", recv, callee.Name)
			return types.BadType()
		}
		callee.SetType(sig)
		if !a.checkArgs(x, sig.Params()) {
			return types.BadType()
		}
		x.SymbolName = mangleMethod(a.pkg, recv.Spec().Name, callee.Name)

		returns := sig.Returns()
		if len(returns) == 0 {
			return types.BadType()
		}
		return returns[0]

	case types.Enum:
		idx, payload, ok := recv.VariantByName(callee.Name)
		if !ok {
			a.fail(ErrCannotFindVariantInEnum, x.Pos, "enum %s has no variant %q", recv, callee.Name)
			return types.BadType()
		}
		if len(x.Args) != len(payload) {
			if len(x.Args) < len(payload) {
				a.fail(ErrCallNotEnoughArguments, x.Pos, "variant %q expects %d argument(s), got %d", callee.Name, len(payload), len(x.Args))
			} else {
				a.fail(ErrCallTooManyArguments, x.Pos, "variant %q expects %d argument(s), got %d", callee.Name, len(payload), len(x.Args))
			}
			return types.BadType()
		}
		for i, arg := range x.Args {
			at := a.checkExpr(arg, payload[i])
			if a.failed() {
				return types.BadType()
			}
			if !compatible(payload[i], at) {
				a.fail(ErrEnumVariantValueTypesIncompatible, arg.Position(),
					"variant %q argument %d expects %s, got %s", callee.Name, i, payload[i], at)
				return types.BadType()
			}
		}
		x.EnumIdx = idx
		x.IsEnumCtor = true
		return recv

	default:
		a.fail(ErrInvalidUsageOfSelector, x.Pos, "cannot call %q on %s", callee.Name, recv)
		return types.BadType()
	}
}

// checkArgs validates x's argument count and types against params, in
// place. On success it returns true with every argument already checked
// (and annotated).
func (a *Analyzer) checkArgs(x *ast.CallExpr, params []*types.Type) bool {
	if len(x.Args) < len(params) {
		a.fail(ErrCallNotEnoughArguments, x.Pos, "expected %d argument(s), got %d", len(params), len(x.Args))
		return false
	}
	if len(x.Args) > len(params) {
		a.fail(ErrCallTooManyArguments, x.Pos, "expected %d argument(s), got %d", len(params), len(x.Args))
		return false
	}
	for i, arg := range x.Args {
		at := a.checkExpr(arg, params[i])
		if a.failed() {
			return false
		}
		if !compatible(params[i], at) {
			a.fail(ErrCallArgumentTypeMismatch, arg.Position(), "argument %d: expected %s, got %s", i, params[i], at)
			return false
		}
	}
	return true
}

func (a *Analyzer) checkArrayLit(x *ast.ArrayLit, hint *types.Type) *types.Type {
	if len(x.Elements) == 0 {
		if hint != nil && hint.Kind() == types.Array {
			return hint
		}
		return types.ArrayOf(types.BadType())
	}

	var elemHint *types.Type
	if hint != nil && hint.Kind() == types.Array {
		elemHint = hint.Elem()
	}

	elemType := a.checkExpr(x.Elements[0], elemHint)
	if a.failed() {
		return types.BadType()
	}
	for _, el := range x.Elements[1:] {
		t := a.checkExpr(el, elemType)
		if a.failed() {
			return types.BadType()
		}
		if !compatible(elemType, t) {
			a.fail(ErrAssignmentTypesIncompatible, el.Position(), "array element type %s incompatible with %s", t, elemType)
			return types.BadType()
		}
	}
	return types.ArrayOf(elemType)
}

func (a *Analyzer) checkObjectLit(x *ast.ObjectLit) *types.Type {
	st, ok := a.typesCol.Lookup(types.NameSpec{Package: a.pkg, Name: x.TypeName})
	if !ok {
		for _, imp := range a.imports {
			if st, ok = a.typesCol.Lookup(types.NameSpec{Package: imp, Name: x.TypeName}); ok {
				break
			}
		}
	}
	if !ok || st.Kind() != types.Struct {
		a.fail(ErrTypeNotFound, x.Pos, "struct %q not found", x.TypeName)
		return types.BadType()
	}

	for i := range x.Fields {
		f := &x.Fields[i]
		idx, ft, ok := st.FieldByName(f.Name)
		if !ok {
			a.fail(ErrStructFieldNotFound, f.Pos, "struct %s has no field %q", st, f.Name)
			return types.BadType()
		}
		f.Idx = idx
		vt := a.checkExpr(f.Value, ft)
		if a.failed() {
			return types.BadType()
		}
		if !compatible(ft, vt) {
			a.fail(ErrAssignmentTypesIncompatible, f.Pos, "field %q: cannot assign %s to %s", f.Name, vt, ft)
			return types.BadType()
		}
	}
	return st
}
