package closure

import (
	"fmt"

	"github.com/lumalang/luma/internal/runtime"
)

// execFrame carries the state one call's instruction walk needs: the
// runtime context, the base offset of this call's frame-arena frame, and a
// scratch register file for intermediate (never GC-rooted) computations.
// Heap handles are only ever root-scanned once stored into a local — see
// AnonData's doc comment and the safe-point discipline note in DESIGN.md.
type execFrame struct {
	ctx   *runtime.Context
	base  int
	temps []uint64
}

// compiledFunc is one function's compiled blocks, ready to run against any
// Context.
type compiledFunc struct {
	symbol  string
	nLocals int
	nTemps  int
	blocks  []blockProgram
}

// run pushes a frame tagged with callSite (the id of the call, in this
// function's caller, that invoked it), executes blocks from the first until
// a Return statement fires, and pops the frame before returning.
func (fn *compiledFunc) run(ctx *runtime.Context, callSite int, args []uint64) []uint64 {
	base := ctx.Frames().Push(callSite, fn.nLocals)
	defer ctx.Frames().Pop(base)
	for i, a := range args {
		ctx.Frames().Set(base, i, a)
	}

	fr := &execFrame{ctx: ctx, base: base, temps: make([]uint64, fn.nTemps)}
	blockIdx := 0
	for {
		var ctl control
		for _, s := range fn.blocks[blockIdx] {
			ctl = s(fr)
			if ctl.kind != branchNone {
				break
			}
		}
		switch ctl.kind {
		case branchJump:
			blockIdx = ctl.target
		case branchReturn:
			return ctl.vals
		default:
			panic(fmt.Sprintf("closure: block %d of %s fell through without a terminator", blockIdx, fn.symbol))
		}
	}
}

// Program is the result of translating a whole module against a Backend:
// every compiled function, indexed by mangled symbol and by the numeric id
// CallValue's indirect-call path uses, plus the call-site stack-map table
// built up alongside them.
type Program struct {
	funcs     map[string]*compiledFunc
	byID      []*compiledFunc
	stackMaps *runtime.StackMapTable
}

func newProgram() *Program {
	return &Program{
		funcs:     make(map[string]*compiledFunc),
		stackMaps: runtime.NewStackMapTable(),
	}
}

func (p *Program) publish(symbol string, fn *compiledFunc) {
	p.funcs[symbol] = fn
	p.byID = append(p.byID, fn)
}

// StackMaps returns the table a runtime.Context must be constructed with to
// run this program.
func (p *Program) StackMaps() *runtime.StackMapTable { return p.stackMaps }

// Call invokes the published function named symbol as a program's entry
// point: no caller frame, so its own call-site id is a sentinel that is
// never looked up (the scanner stops at the first frame with no parent
// before it would need one).
func (p *Program) Call(ctx *runtime.Context, symbol string, args []uint64) ([]uint64, error) {
	fn, ok := p.funcs[symbol]
	if !ok {
		return nil, fmt.Errorf("closure: unknown function %q", symbol)
	}
	const noCallSite = -1
	return fn.run(ctx, noCallSite, args), nil
}

// Has reports whether symbol was published.
func (p *Program) Has(symbol string) bool {
	_, ok := p.funcs[symbol]
	return ok
}
