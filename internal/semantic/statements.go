package semantic

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/types"
)

func (a *Analyzer) checkStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.Block:
		a.checkBlock(st)

	case *ast.ExprStmt:
		a.checkExpr(st.X, nil)

	case *ast.VarDecl:
		a.checkVarDecl(st)

	case *ast.If:
		a.checkIf(st)

	case *ast.While:
		a.checkWhile(st)

	case *ast.Return:
		a.checkReturn(st)
	}
}

func (a *Analyzer) checkVarDecl(d *ast.VarDecl) {
	var hint *types.Type
	if d.Annotation != nil {
		hint = a.resolveTypeExpr(d.Annotation)
		if a.failed() {
			return
		}
	}

	valType := a.checkExpr(d.Value, hint)
	if a.failed() {
		return
	}

	declType := valType
	if hint != nil {
		if !compatible(hint, valType) {
			a.fail(ErrIncompatibleTypesInVariableDefinition, d.Pos,
				"cannot assign %s to variable %q of type %s", valType, d.Name, hint)
			return
		}
		declType = hint
	}

	a.curScope.declare(d.Name, declType)
}

func (a *Analyzer) checkIf(i *ast.If) {
	condType := a.checkExpr(i.Cond, types.BoolType())
	if a.failed() {
		return
	}
	if condType.Kind() != types.Bool {
		a.fail(ErrExpectedBooleanInTestCondition, i.Cond.Position(), "if condition must be bool, got %s", condType)
		return
	}
	a.checkBlock(i.Then)
	if a.failed() {
		return
	}
	if i.Else != nil {
		a.checkBlock(i.Else)
	}
}

func (a *Analyzer) checkWhile(w *ast.While) {
	condType := a.checkExpr(w.Cond, types.BoolType())
	if a.failed() {
		return
	}
	if condType.Kind() != types.Bool {
		a.fail(ErrExpectedBooleanInTestCondition, w.Cond.Position(), "while condition must be bool, got %s", condType)
		return
	}
	a.checkBlock(w.Body)
}

func (a *Analyzer) checkReturn(r *ast.Return) {
	if len(a.curReturns) == 0 {
		if r.Value != nil {
			a.fail(ErrUnexpectedReturnValue, r.Pos, "function has no return type but a value was returned")
		}
		return
	}

	want := a.curReturns[0]
	if r.Value == nil {
		a.fail(ErrMissingReturnValue, r.Pos, "function must return a value of type %s", want)
		return
	}

	got := a.checkExpr(r.Value, want)
	if a.failed() {
		return
	}
	if !compatible(want, got) {
		a.fail(ErrIncompatibleTypesInReturnValue, r.Pos, "cannot return %s, function returns %s", got, want)
	}
}
