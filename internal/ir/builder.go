package ir

import "github.com/lumalang/luma/internal/types"

// Builder assembles one Function: scoped variable declaration/lookup plus
// block management, so internal/emit can focus purely on the AST-to-IR
// lowering rules. Grounded on the scope/local bookkeeping fields of the
// teacher's bytecode Compiler, generalized from slot-indexed locals to
// named, typed IR variables.
type Builder struct {
	fn     *Function
	scopes []map[string]VarID
	cur    BlockID
}

// NewBuilder starts building a Function with id and signature. It opens the
// entry block (index 0) and pushes the initial scope.
func NewBuilder(id string, sig Signature) *Builder {
	b := &Builder{fn: &Function{ID: id, Signature: sig}}
	b.NewBlock()
	b.PushScope()
	return b
}

// PushScope opens a new lexical scope for variable name resolution.
func (b *Builder) PushScope() {
	b.scopes = append(b.scopes, make(map[string]VarID))
}

// PopScope closes the innermost lexical scope.
func (b *Builder) PopScope() {
	b.scopes = b.scopes[:len(b.scopes)-1]
}

// DeclareVar creates a new IR variable of type t, visible under name in the
// current scope, and returns its id.
func (b *Builder) DeclareVar(name string, t *types.Type) VarID {
	id := VarID(len(b.fn.Variables))
	b.fn.Variables = append(b.fn.Variables, Variable{ID: id, Type: t})
	b.scopes[len(b.scopes)-1][name] = id
	return id
}

// LookupVar resolves name against the scope stack, innermost first.
func (b *Builder) LookupVar(name string) (VarID, bool) {
	for i := len(b.scopes) - 1; i >= 0; i-- {
		if id, ok := b.scopes[i][name]; ok {
			return id, true
		}
	}
	return 0, false
}

// VarType returns the canonical type of a previously declared variable.
func (b *Builder) VarType(id VarID) *types.Type {
	return b.fn.Variables[id].Type
}

// NewBlock appends a new, empty block and returns its id. It does not
// change the current emission target; call SetBlock to switch to it.
func (b *Builder) NewBlock() BlockID {
	id := BlockID(len(b.fn.Blocks))
	b.fn.Blocks = append(b.fn.Blocks, &Block{})
	return id
}

// SetBlock switches the emission target to block id.
func (b *Builder) SetBlock(id BlockID) {
	b.cur = id
}

// CurrentBlock returns the block instructions are currently appended to.
func (b *Builder) CurrentBlock() BlockID {
	return b.cur
}

// Emit appends instr to the current block.
func (b *Builder) Emit(instr Instruction) {
	blk := b.fn.Blocks[b.cur]
	blk.Instrs = append(blk.Instrs, instr)
}

// Terminated reports whether the current block already ends in a
// terminator (Ret, Br, or CondBr), so callers can avoid emitting dead code
// or a redundant terminator.
func (b *Builder) Terminated() bool {
	blk := b.fn.Blocks[b.cur]
	if len(blk.Instrs) == 0 {
		return false
	}
	switch blk.Instrs[len(blk.Instrs)-1].Op {
	case Ret, Br, CondBr:
		return true
	default:
		return false
	}
}

// Finish returns the completed Function.
func (b *Builder) Finish() *Function {
	return b.fn
}
