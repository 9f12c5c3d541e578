package closure

import (
	"strings"

	"github.com/lumalang/luma/internal/codegen"
	"github.com/lumalang/luma/internal/runtime"
)

func (cb *Backend) CallSymbol(symbol string, args []codegen.Value) []codegen.Value {
	callSite := cb.nextCallSite
	cb.nextCallSite++
	cb.lastCallSite = callSite

	// args[0] is always the context pointer (Param(0)/ctxValue); only the
	// rest are ordinary word-producing values.
	argVals := make([]value, len(args)-1)
	for i := 1; i < len(args); i++ {
		argVals[i-1] = asValue(args[i])
	}
	resultTemp := cb.building.newTemp()

	cb.emit(func(fr *execFrame) control {
		wordArgs := make([]uint64, len(argVals))
		for i, av := range argVals {
			wordArgs[i] = av(fr)
		}
		fr.temps[resultTemp] = cb.dispatch(fr, callSite, symbol, wordArgs)
		return control{}
	})

	return []codegen.Value{value(func(fr *execFrame) uint64 { return fr.temps[resultTemp] })}
}

// CallValue backs ir.IndirectCall, which internal/emit never produces (the
// surface language has no first-class function values); kept for contract
// completeness. callee evaluates to a published function's numeric id, the
// same id space Program.byID indexes.
func (cb *Backend) CallValue(callee codegen.Value, args []codegen.Value) []codegen.Value {
	calleeV := asValue(callee)
	argVals := make([]value, len(args)-1)
	for i := 1; i < len(args); i++ {
		argVals[i-1] = asValue(args[i])
	}
	callSite := cb.nextCallSite
	cb.nextCallSite++
	cb.lastCallSite = callSite
	program := cb.program
	resultTemp := cb.building.newTemp()

	cb.emit(func(fr *execFrame) control {
		id := int(calleeV(fr))
		fn := program.byID[id]
		wordArgs := make([]uint64, len(argVals))
		for i, av := range argVals {
			wordArgs[i] = av(fr)
		}
		results := fn.run(fr.ctx, callSite, wordArgs)
		if len(results) > 0 {
			fr.temps[resultTemp] = results[0]
		}
		return control{}
	})

	return []codegen.Value{value(func(fr *execFrame) uint64 { return fr.temps[resultTemp] })}
}

// StackMap records, for the call site most recently emitted by CallSymbol
// or CallValue, which local slots of the enclosing function hold
// GC-reachable handles.
func (cb *Backend) StackMap(live []codegen.Var) {
	slots := make(runtime.StackMap, len(live))
	for i, v := range live {
		slots[i] = int(v)
	}
	cb.program.stackMaps.Record(cb.lastCallSite, slots)
}

// dispatch performs the actual call a CallSymbol statement was built for:
// a heap/safe-point runtime helper, a surface builtin, or a published
// user function — in that priority order, since the helper and builtin
// symbol spaces are both fixed and checked before falling back to a
// program-function lookup.
func (cb *Backend) dispatch(fr *execFrame, callSite int, symbol string, args []uint64) uint64 {
	switch symbol {
	case runtime.SymCreateArray:
		return fr.ctx.CreateArray(int64(args[0]))
	case runtime.SymCreateObject:
		return fr.ctx.CreateObject(int64(args[0]))
	case runtime.SymArrayGet:
		return fr.ctx.ArrayGet(args[0], int64(args[1]))
	case runtime.SymArraySet:
		fr.ctx.ArraySet(args[0], int64(args[1]), args[2])
		return 0
	case runtime.SymObjectGet:
		return fr.ctx.ObjectGet(args[0], int64(args[1]))
	case runtime.SymObjectSet:
		fr.ctx.ObjectSet(args[0], int64(args[1]), args[2])
		return 0
	case runtime.SymCheckYield:
		fr.ctx.CheckYield(fr.base, callSite)
		return 0
	}

	if name, ok := strings.CutPrefix(symbol, runtime.BuiltinPrefix); ok {
		if fn, ok := runtime.Builtins[name]; ok {
			fn(fr.ctx, args)
			return 0
		}
	}

	fn := cb.program.funcs[symbol]
	results := fn.run(fr.ctx, callSite, args)
	if len(results) > 0 {
		return results[0]
	}
	return 0
}
