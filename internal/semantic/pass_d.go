package semantic

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/types"
)

// passD runs the per-function inference engine over every free function and
// method body.
func (a *Analyzer) passD(pkg *ast.Package) {
	for _, file := range pkg.Files {
		a.pkg = pkg.ID
		a.imports = file.Imports

		for _, fn := range file.Functions {
			if a.failed() {
				return
			}
			a.checkFunctionBody(fn)
		}
	}
}

func (a *Analyzer) checkFunctionBody(fn *ast.FuncDecl) {
	a.curScope = newScope(nil)
	a.selfType = nil
	a.curReturns = nil

	if fn.ReturnType != nil {
		a.curReturns = []*types.Type{a.resolveTypeExpr(fn.ReturnType)}
		if a.failed() {
			return
		}
	}

	if fn.IsMethod() {
		st, ok := a.typesCol.Lookup(types.NameSpec{Package: a.pkg, Name: fn.Receiver})
		if !ok {
			a.fail(ErrTypeNotFound, fn.Pos, "receiver type %q not declared", fn.Receiver)
			return
		}
		a.selfType = st
	}

	for _, p := range fn.Params {
		pt := a.resolveTypeExpr(p.Annotation)
		if a.failed() {
			return
		}
		a.curScope.declare(p.Name, pt)
	}

	a.checkBlock(fn.Body)
}

// checkBlock pushes a new lexical scope and type-checks each statement in it.
func (a *Analyzer) checkBlock(b *ast.Block) {
	if b == nil || a.failed() {
		return
	}
	a.curScope = newScope(a.curScope)
	defer func() { a.curScope = a.curScope.parent }()

	for _, s := range b.Stmts {
		if a.failed() {
			return
		}
		a.checkStmt(s)
	}
}
