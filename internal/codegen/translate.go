package codegen

import (
	"fmt"

	"github.com/lumalang/luma/internal/ir"
)

// Translator walks a checked ir.Module and emits it against a Backend,
// performing the generator's five steps per function: signature
// translation, block/variable setup, an instruction walk over a
// translate-time operand stack of native Values, stack-map emission at
// every call, and publication.
type Translator struct {
	b         Backend
	funcsByID map[string]*ir.Function
}

// NewTranslator creates a Translator emitting against b.
func NewTranslator(b Backend) *Translator {
	return &Translator{b: b}
}

// Translate lowers every function of mod against the Backend, in order.
func (t *Translator) Translate(mod *ir.Module) error {
	t.funcsByID = make(map[string]*ir.Function, len(mod.Functions))
	for _, fn := range mod.Functions {
		t.funcsByID[fn.ID] = fn
	}
	for _, fn := range mod.Functions {
		if err := t.translateFunction(mod, fn); err != nil {
			return fmt.Errorf("codegen: %s: %w", fn.ID, err)
		}
	}
	return nil
}

type calleeInfo struct {
	params  int
	returns int
}

func (t *Translator) calleeInfo(symbol string) calleeInfo {
	if fn, ok := t.funcsByID[symbol]; ok {
		return calleeInfo{params: len(fn.Signature.Params), returns: len(fn.Signature.Returns)}
	}
	if params, ok := builtinParams[symbol]; ok {
		return calleeInfo{params: len(params)}
	}
	panic(fmt.Sprintf("codegen: call to unresolved symbol %q", symbol))
}

func (t *Translator) translateFunction(mod *ir.Module, fn *ir.Function) error {
	params := make([]BackendType, len(fn.Signature.Params))
	for i, p := range fn.Signature.Params {
		params[i] = t.b.TranslateType(p)
	}
	returns := make([]BackendType, len(fn.Signature.Returns))
	for i, r := range fn.Signature.Returns {
		returns[i] = t.b.TranslateType(r)
	}
	t.b.DeclareFunction(fn.ID, params, returns)
	t.b.StartFunction(fn.ID)

	blocks := make([]Block, len(fn.Blocks))
	for i := range fn.Blocks {
		blocks[i] = t.b.NewBlock()
	}

	vars := make([]Var, len(fn.Variables))
	var liveVars []Var // every Ptr-typed local: the conservative root set at any call
	for i, v := range fn.Variables {
		bt := t.b.TranslateType(v.Type)
		vars[i] = t.b.DeclareVar(bt)
		if bt == Ptr {
			liveVars = append(liveVars, vars[i])
		}
	}

	t.b.SetBlock(blocks[0])
	for i := range fn.Signature.Params {
		t.b.Store(vars[i], t.b.Param(i+1)) // native param 0 is the context pointer
	}
	ctx := t.b.Param(0)

	fr := &frameBuilder{t: t, fn: fn, blocks: blocks, vars: vars, ctx: ctx, liveVars: liveVars}
	for bi, blk := range fn.Blocks {
		t.b.SetBlock(blocks[bi])
		var stack []Value
		for _, instr := range blk.Instrs {
			stack = fr.step(mod, instr, stack)
		}
	}

	t.b.FinishFunction()
	t.b.Publish(fn.ID)
	return nil
}

// frameBuilder carries the per-function translation state the instruction
// walk needs: the block/variable tables, the context pointer, and the
// conservative live-pointer set passed to every StackMap call.
type frameBuilder struct {
	t        *Translator
	fn       *ir.Function
	blocks   []Block
	vars     []Var
	ctx      Value
	liveVars []Var
}

func pop1(stack []Value) ([]Value, Value) {
	n := len(stack)
	return stack[:n-1], stack[n-1]
}

func pop2(stack []Value) ([]Value, Value, Value) {
	n := len(stack)
	return stack[:n-2], stack[n-2], stack[n-1]
}

func pop3(stack []Value) ([]Value, Value, Value, Value) {
	n := len(stack)
	return stack[:n-3], stack[n-3], stack[n-2], stack[n-1]
}

func popN(stack []Value, n int) ([]Value, []Value) {
	k := len(stack) - n
	return stack[:k], stack[k:]
}

// call invokes a backend helper with ctx prepended and records a stack map
// covering every live pointer local, then returns its results.
func (fr *frameBuilder) call(symbol string, args []Value) []Value {
	full := append([]Value{fr.ctx}, args...)
	results := fr.t.b.CallSymbol(symbol, full)
	fr.t.b.StackMap(fr.liveVars)
	return results
}

// step translates one IR instruction against stack, the translate-time
// operand stack of native Values, and returns the updated stack.
func (fr *frameBuilder) step(mod *ir.Module, instr ir.Instruction, stack []Value) []Value {
	b := fr.t.b

	switch instr.Op {
	case ir.Nop:

	case ir.Dup:
		stack = append(stack, stack[len(stack)-1-instr.K])
	case ir.Pop:
		stack, _ = pop1(stack)

	case ir.LoadConstInt:
		stack = append(stack, b.IConst(instr.IntVal))
	case ir.LoadConstNumber:
		stack = append(stack, b.FConst(instr.NumberVal))
	case ir.LoadConstBool:
		v := int64(0)
		if instr.BoolVal {
			v = 1
		}
		stack = append(stack, b.IConst(v))
	case ir.LoadConstString:
		data := stringABIBytes(mod.Strings.Value(instr.StringRef))
		stack = append(stack, b.AnonData(data))

	case ir.AddInt:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.IAdd(a, bv))
	case ir.SubInt:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.ISub(a, bv))
	case ir.MulInt:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.IMul(a, bv))
	case ir.DivInt:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.SDiv(a, bv))
	case ir.ModInt:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.SMod(a, bv))
	case ir.EquInt:
		stack = fr.icmp(stack, CmpEq)
	case ir.NeqInt:
		stack = fr.icmp(stack, CmpNe)
	case ir.LtInt:
		stack = fr.icmp(stack, CmpLt)
	case ir.GtInt:
		stack = fr.icmp(stack, CmpGt)
	case ir.LeqInt:
		stack = fr.icmp(stack, CmpLe)
	case ir.GeqInt:
		stack = fr.icmp(stack, CmpGe)

	case ir.AddNumber:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.FAdd(a, bv))
	case ir.SubNumber:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.FSub(a, bv))
	case ir.MulNumber:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.FMul(a, bv))
	case ir.DivNumber:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.FDiv(a, bv))
	case ir.ModNumber:
		// No native fmod in the builder's op list; synthesize a - trunc(a/b)*b.
		var a, bv Value
		stack, a, bv = pop2(stack)
		q := b.ToInt(b.FDiv(a, bv))
		stack = append(stack, b.FSub(a, b.FMul(b.ToFloat(q), bv)))
	case ir.EquNumber:
		stack = fr.fcmp(stack, CmpEq)
	case ir.NeqNumber:
		stack = fr.fcmp(stack, CmpNe)
	case ir.LtNumber:
		stack = fr.fcmp(stack, CmpLt)
	case ir.GtNumber:
		stack = fr.fcmp(stack, CmpGt)
	case ir.LeqNumber:
		stack = fr.fcmp(stack, CmpLe)
	case ir.GeqNumber:
		stack = fr.fcmp(stack, CmpGe)

	// And/Or/Not have no dedicated builder op (the minimal builder contract
	// covers arithmetic, comparison, and control flow only); they are
	// synthesized from iadd/imul/isub/icmp over the 0/1 bool byte, the same
	// trick a register machine without a boolean ALU would use.
	case ir.And:
		var a, bv Value
		stack, a, bv = pop2(stack)
		stack = append(stack, b.IMul(a, bv))
	case ir.Or:
		var a, bv Value
		stack, a, bv = pop2(stack)
		sum := b.IAdd(a, bv)
		stack = append(stack, b.ICmp(CmpNe, sum, b.IConst(0)))
	case ir.Not:
		var a Value
		stack, a = pop1(stack)
		stack = append(stack, b.ISub(b.IConst(1), a))

	case ir.Truncate:
		var a Value
		stack, a = pop1(stack)
		stack = append(stack, b.ToInt(a))
	case ir.Promote:
		var a Value
		stack, a = pop1(stack)
		stack = append(stack, b.ToFloat(a))

	case ir.Load:
		stack = append(stack, b.Load(fr.vars[instr.Var]))
	case ir.Store:
		var v Value
		stack, v = pop1(stack)
		b.Store(fr.vars[instr.Var], v)
	case ir.Tee:
		v := stack[len(stack)-1]
		b.Store(fr.vars[instr.Var], v)

	case ir.Br:
		b.Jump(fr.blocks[instr.Then])
	case ir.CondBr:
		var cond Value
		stack, cond = pop1(stack)
		b.Brif(cond, fr.blocks[instr.Then], fr.blocks[instr.Else])
	case ir.Ret:
		if len(fr.fn.Signature.Returns) > 0 {
			var v Value
			stack, v = pop1(stack)
			b.Return([]Value{v})
		} else {
			b.Return(nil)
		}

	case ir.Call:
		info := fr.t.calleeInfo(instr.Symbol)
		var args []Value
		stack, args = popN(stack, info.params)
		results := fr.call(instr.Symbol, args)
		if info.returns > 0 && len(results) > 0 {
			stack = append(stack, results[0])
		}
	case ir.IndirectCall:
		// Never emitted by internal/emit; kept for contract completeness.
		// With no surface construct to type it, assume a nullary void call.
		var callee Value
		stack, callee = pop1(stack)
		b.CallValue(callee, []Value{fr.ctx})
		b.StackMap(fr.liveVars)

	case ir.NewArray:
		results := fr.call(symCreateArray, []Value{b.IConst(int64(instr.N))})
		stack = append(stack, results[0])
	case ir.LoadArray:
		var index, array Value
		stack, index, array = pop2(stack)
		results := fr.call(symArrayGet, []Value{array, index})
		stack = append(stack, results[0])
	case ir.StoreArray:
		var value, index, array Value
		stack, value, index, array = pop3(stack)
		fr.call(symArraySet, []Value{array, index, value})
	case ir.NewObject:
		results := fr.call(symCreateObject, []Value{b.IConst(int64(instr.N))})
		stack = append(stack, results[0])
	case ir.GetObject:
		var object Value
		stack, object = pop1(stack)
		results := fr.call(symObjectGet, []Value{object, b.IConst(int64(instr.Idx))})
		stack = append(stack, results[0])
	case ir.SetObject:
		var value, object Value
		stack, value, object = pop2(stack)
		fr.call(symObjectSet, []Value{object, b.IConst(int64(instr.Idx)), value})

	case ir.CheckYield:
		fr.call(symCheckYield, nil)

	default:
		panic(fmt.Sprintf("codegen: unhandled op %s", instr.Op))
	}

	return stack
}

func (fr *frameBuilder) icmp(stack []Value, op CmpOp) []Value {
	var a, bv Value
	stack, a, bv = pop2(stack)
	return append(stack, fr.t.b.ICmp(op, a, bv))
}

func (fr *frameBuilder) fcmp(stack []Value, op CmpOp) []Value {
	var a, bv Value
	stack, a, bv = pop2(stack)
	return append(stack, fr.t.b.FCmp(op, a, bv))
}
