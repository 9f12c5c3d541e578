package semantic

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/types"
)

// passC resolves every free function's signature and registers it in the
// FunctionCollection under its package. Method signatures were already
// appended to their owning struct by Pass B and are resolved for calls via
// the struct's own method list, not through this collection — methods are
// not re-registered here.
func (a *Analyzer) passC(pkg *ast.Package) {
	for _, file := range pkg.Files {
		a.pkg = pkg.ID
		a.imports = file.Imports

		for _, fn := range file.Functions {
			if a.failed() {
				return
			}
			if fn.IsMethod() {
				continue
			}

			params := make([]*types.Type, len(fn.Params))
			for i, p := range fn.Params {
				params[i] = a.resolveTypeExpr(p.Annotation)
				if a.failed() {
					return
				}
			}
			var returns []*types.Type
			if fn.ReturnType != nil {
				returns = []*types.Type{a.resolveTypeExpr(fn.ReturnType)}
				if a.failed() {
					return
				}
			}

			spec := types.NameSpec{Package: pkg.ID, Name: fn.Name}
			fn.SymbolName = mangleFunc(pkg.ID, fn.Name)
			fn.ParamTypes = params
			fn.ReturnTypes = returns
			a.funcsCol.Declare(&types.FuncInfo{Spec: spec, Sig: types.NewFunction(params, returns), SymbolName: fn.SymbolName})
		}
	}
}
