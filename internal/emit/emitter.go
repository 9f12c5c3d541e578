// Package emit lowers a semantically-checked AST into internal/ir: one
// ir.Function per FuncDecl, using internal/ir's Builder for scope and block
// bookkeeping. Grounded on the teacher's internal/bytecode Compiler struct
// (scope/local bookkeeping fields, compileStatement/compileExpression
// dispatch switch) — same shape, different target.
package emit

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/ir"
	"github.com/lumalang/luma/internal/types"
)

// Emitter lowers a Program into an ir.Module. It needs the resolved type
// graph to look up a method's receiver type and a struct's field layout.
type Emitter struct {
	types *types.TypeCollection
	mod   *ir.Module
}

// NewEmitter creates an Emitter reading the canonical type graph tc.
func NewEmitter(tc *types.TypeCollection) *Emitter {
	return &Emitter{types: tc}
}

// EmitProgram lowers every function of every package in program into a
// fresh ir.Module.
func (em *Emitter) EmitProgram(program *ast.Program) *ir.Module {
	em.mod = ir.NewModule()
	for _, pkg := range program.Packages {
		for _, file := range pkg.Files {
			for _, fn := range file.Functions {
				em.mod.Functions = append(em.mod.Functions, em.emitFunction(pkg.ID, fn))
			}
		}
	}
	return em.mod
}

func (em *Emitter) emitFunction(pkgID string, fn *ast.FuncDecl) *ir.Function {
	var selfType *types.Type
	var sig ir.Signature
	if fn.IsMethod() {
		selfType, _ = em.types.Lookup(types.NameSpec{Package: pkgID, Name: fn.Receiver})
		sig.Params = append(sig.Params, selfType)
	}
	sig.Params = append(sig.Params, fn.ParamTypes...)
	sig.Returns = fn.ReturnTypes

	b := ir.NewBuilder(fn.SymbolName, sig)
	if fn.IsMethod() {
		b.DeclareVar("self", selfType)
	}
	for i, p := range fn.Params {
		b.DeclareVar(p.Name, fn.ParamTypes[i])
	}

	em.lowerBlock(b, fn.Body)

	if !b.Terminated() {
		if len(fn.ReturnTypes) == 0 {
			b.Emit(ir.Instruction{Op: ir.Ret})
		} else {
			em.defaultValue(b, fn.ReturnTypes[0])
			b.Emit(ir.Instruction{Op: ir.Ret})
		}
	}

	return b.Finish()
}
