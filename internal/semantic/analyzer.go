// Package semantic implements a four-pass checker: it resolves names across
// packages, builds the canonical type graph with shared mutable struct/enum
// bodies, infers expression types with bidirectional hints, and assigns the
// mangled symbol names the emitter consumes — grounded on the pass-over-ast
// structuring of the teacher's internal/semantic package, generalized from
// its symbol-table walk to a declare/resolve/collect/check pass split.
package semantic

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/types"
)

// Analyzer runs Passes A–D over a Program and annotates its AST in place.
type Analyzer struct {
	typesCol *types.TypeCollection
	funcsCol *types.FunctionCollection

	err *Error

	// Per-function state, valid only while Pass D is checking a function body.
	pkg        string
	imports    []string
	curScope   *scope
	selfType   *types.Type
	curReturns []*types.Type
}

// NewAnalyzer creates an Analyzer with the builtins package pre-registered.
func NewAnalyzer() *Analyzer {
	a := &Analyzer{
		typesCol: types.NewTypeCollection(),
		funcsCol: types.NewFunctionCollection(),
	}
	a.registerBuiltins()
	return a
}

func (a *Analyzer) registerBuiltins() {
	register := func(name string, params []*types.Type) {
		spec := types.NameSpec{Package: "builtins", Name: name}
		sig := types.NewFunction(params, nil)
		a.funcsCol.Declare(&types.FuncInfo{Spec: spec, Sig: sig, SymbolName: mangleBuiltin(name)})
	}
	register("print", []*types.Type{types.StringType()})
	register("println", []*types.Type{types.StringType()})
	register("printint", []*types.Type{types.IntegerType()})
	register("printarray", []*types.Type{types.ArrayOf(types.IntegerType())})
	register("assert", []*types.Type{types.BoolType()})
}

// Types exposes the resolved type collection, used by internal/driver to
// hand the type graph to the IR emitter.
func (a *Analyzer) Types() *types.TypeCollection { return a.typesCol }

// Funcs exposes the resolved function collection.
func (a *Analyzer) Funcs() *types.FunctionCollection { return a.funcsCol }

// Analyze runs all four passes over program, mutating its AST in place.
// The first error encountered in any pass aborts analysis.
func (a *Analyzer) Analyze(program *ast.Program) error {
	for _, pkg := range program.Packages {
		a.passA(pkg)
	}
	if a.err != nil {
		return a.err
	}

	for _, pkg := range program.Packages {
		a.passB(pkg)
	}
	if a.err != nil {
		return a.err
	}

	for _, pkg := range program.Packages {
		a.passC(pkg)
	}
	if a.err != nil {
		return a.err
	}

	for _, pkg := range program.Packages {
		a.passD(pkg)
	}
	if a.err != nil {
		return a.err
	}
	return nil
}

// passA declares an empty canonical Struct/Enum type for every declaration
// in pkg, decoupling declaration from resolution.
func (a *Analyzer) passA(pkg *ast.Package) {
	for _, file := range pkg.Files {
		for _, sd := range file.Structs {
			spec := types.NameSpec{Package: pkg.ID, Name: sd.Name}
			a.typesCol.Declare(spec, types.NewStruct(spec))
		}
		for _, ed := range file.Enums {
			spec := types.NameSpec{Package: pkg.ID, Name: ed.Name}
			a.typesCol.Declare(spec, types.NewEnum(spec))
		}
	}
}
