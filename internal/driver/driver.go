// Package driver sequences the pipeline from source text to a running
// program: parse, check, lower to IR, translate against a Backend, then
// hand back the IR module and a callable Program (Compile), or build a
// Context and call the entry point in one step (Run). It does
// no file I/O of its own; cmd/luma owns reading the source and choosing
// where output goes.
package driver

import (
	"fmt"
	"io"

	"github.com/lumalang/luma/internal/backend/closure"
	"github.com/lumalang/luma/internal/codegen"
	"github.com/lumalang/luma/internal/emit"
	"github.com/lumalang/luma/internal/errors"
	"github.com/lumalang/luma/internal/ir"
	"github.com/lumalang/luma/internal/parser"
	"github.com/lumalang/luma/internal/runtime"
	"github.com/lumalang/luma/internal/semantic"
)

// EntrySymbol is the mangled symbol of the program's entry point.
const EntrySymbol = "_Lmain_main"

// Result is a fully compiled, ready-to-run program. Module is kept alongside
// the translated Program so callers (the disasm command) can inspect the IR
// without re-running the front end.
type Result struct {
	Module  *ir.Module
	Program *closure.Program
}

// Compile runs source through the parser, the semantic analyzer, the IR
// emitter, and the closure-composing code generator, in that order,
// stopping at the first phase that reports an error. file is used only to
// annotate diagnostics.
func Compile(source, file string) (*Result, error) {
	program, errs := parser.ParseProgram(source)
	if len(errs) > 0 {
		first := errs[0]
		ce := errors.New(first.Kind, first.Pos, source, file, first.Msg)
		return nil, fmt.Errorf("%s", ce.Error())
	}

	analyzer := semantic.NewAnalyzer()
	if err := analyzer.Analyze(program); err != nil {
		if se, ok := err.(*semantic.Error); ok {
			ce := errors.New(se.Kind, se.Pos, source, file, se.Msg)
			return nil, fmt.Errorf("%s", ce.Error())
		}
		return nil, fmt.Errorf("semantic error: %w", err)
	}

	mod := emit.NewEmitter(analyzer.Types()).EmitProgram(program)

	be := closure.New()
	if err := codegen.NewTranslator(be).Translate(mod); err != nil {
		return nil, fmt.Errorf("codegen error: %w", err)
	}

	return &Result{Module: mod, Program: be.Program()}, nil
}

// Run compiles source and invokes its entry point, writing builtin output
// to out.
func Run(source, file string, out io.Writer) ([]uint64, error) {
	result, err := Compile(source, file)
	if err != nil {
		return nil, err
	}
	if !result.Program.Has(EntrySymbol) {
		return nil, fmt.Errorf("%s: no main function", file)
	}
	ctx := runtime.NewContext(out, result.Program.StackMaps())
	return result.Program.Call(ctx, EntrySymbol, nil)
}
