package closure

import "github.com/lumalang/luma/internal/codegen"

// branchKind tags what a statement told the trampoline in compiledFunc.run
// to do after it ran.
type branchKind int

const (
	branchNone branchKind = iota
	branchJump
	branchReturn
)

// control is a statement's instruction to the block trampoline: keep
// running the current block (branchNone), jump to another block, or return
// from the function.
type control struct {
	kind   branchKind
	target int
	vals   []uint64
}

// stmt is a side-effecting instruction sequenced into a block's program.
type stmt func(fr *execFrame) control

// blockProgram is one basic block's statements, run in order; the last one
// reached must be a terminator (Jump, Brif, or Return), never branchNone.
type blockProgram []stmt

func (cb *Backend) Jump(b codegen.Block) {
	target := int(b) - 1
	cb.emit(func(fr *execFrame) control {
		return control{kind: branchJump, target: target}
	})
}

func (cb *Backend) Brif(cond codegen.Value, thenB, elseB codegen.Block) {
	cv := asValue(cond)
	thenT, elseT := int(thenB)-1, int(elseB)-1
	cb.emit(func(fr *execFrame) control {
		if cv(fr) != 0 {
			return control{kind: branchJump, target: thenT}
		}
		return control{kind: branchJump, target: elseT}
	})
}

func (cb *Backend) Return(vals []codegen.Value) {
	vs := make([]value, len(vals))
	for i, v := range vals {
		vs[i] = asValue(v)
	}
	cb.emit(func(fr *execFrame) control {
		out := make([]uint64, len(vs))
		for i, v := range vs {
			out[i] = v(fr)
		}
		return control{kind: branchReturn, vals: out}
	})
}
