package semantic

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/types"
)

// resolveTypeExpr resolves an AST type expression against the canonical
// type graph: scalars map to their singleton, arrays recurse, and an
// identifier resolves first against the current package, then against each
// imported package in order.
func (a *Analyzer) resolveTypeExpr(te *ast.TypeExpr) *types.Type {
	if te == nil {
		return types.BadType()
	}
	switch te.Kind {
	case ast.TInteger:
		return types.IntegerType()
	case ast.TNumber:
		return types.NumberType()
	case ast.TString:
		return types.StringType()
	case ast.TBool:
		return types.BoolType()
	case ast.TArray:
		return types.ArrayOf(a.resolveTypeExpr(te.Of))
	case ast.TIdentifier:
		if t, ok := a.typesCol.Lookup(types.NameSpec{Package: a.pkg, Name: te.Name}); ok {
			return t
		}
		for _, imp := range a.imports {
			if t, ok := a.typesCol.Lookup(types.NameSpec{Package: imp, Name: te.Name}); ok {
				return t
			}
		}
		a.fail(ErrTypeNotFound, te.Pos, "type %q not found", te.Name)
		return types.BadType()
	default:
		a.fail(ErrTypeNotFound, te.Pos, "unresolved type reference")
		return types.BadType()
	}
}

// compatible reports whether a value of type b may be used where a is
// expected. This is strict structural equality with no int/number
// promotion: the only place that exception is granted is the arithmetic
// operator branch of checkBinary, which checks IsNumeric directly instead
// of calling compatible.
func compatible(a, b *types.Type) bool {
	return a.Equals(b)
}
