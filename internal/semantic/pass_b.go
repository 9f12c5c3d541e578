package semantic

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/types"
)

// passB resolves every struct's fields and methods and every enum's
// variants into canonical types, appending them to the handles Pass A
// created. Method signatures are appended to their owning struct here
// (needed to type-check method-selector calls in Pass D); each method's
// own mangled symbol name is also assigned here, since this is where the
// method-struct association is already in hand.
func (a *Analyzer) passB(pkg *ast.Package) {
	for _, file := range pkg.Files {
		a.pkg = pkg.ID
		a.imports = file.Imports

		for _, sd := range file.Structs {
			if a.failed() {
				return
			}
			st, ok := a.typesCol.Lookup(types.NameSpec{Package: pkg.ID, Name: sd.Name})
			if !ok {
				a.fail(ErrTypeNotFound, sd.Pos, "struct %q not declared", sd.Name)
				return
			}
			for _, f := range sd.Fields {
				ft := a.resolveTypeExpr(f.Annotation)
				if a.failed() {
					return
				}
				st.AddField(f.Name, ft)
			}
		}

		for _, ed := range file.Enums {
			if a.failed() {
				return
			}
			et, ok := a.typesCol.Lookup(types.NameSpec{Package: pkg.ID, Name: ed.Name})
			if !ok {
				a.fail(ErrTypeNotFound, ed.Pos, "enum %q not declared", ed.Name)
				return
			}
			for _, v := range ed.Variants {
				payload := make([]*types.Type, len(v.Payload))
				for i, pt := range v.Payload {
					payload[i] = a.resolveTypeExpr(pt)
					if a.failed() {
						return
					}
				}
				et.AddVariant(v.Name, payload)
			}
		}

		for _, fn := range file.Functions {
			if a.failed() {
				return
			}
			if !fn.IsMethod() {
				continue
			}
			st, ok := a.typesCol.Lookup(types.NameSpec{Package: pkg.ID, Name: fn.Receiver})
			if !ok {
				a.fail(ErrTypeNotFound, fn.Pos, "receiver type %q not declared", fn.Receiver)
				return
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

			st.AddMethod(fn.Name, types.NewFunction(params, returns))
			fn.SymbolName = mangleMethod(pkg.ID, fn.Receiver, fn.Name)
			fn.ParamTypes = params
			fn.ReturnTypes = returns
		}
	}
}
