package emit

import (
	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/ir"
)

// lowerBlock opens a variable scope, lowers each statement in order, and
// stops at the first one that leaves its block terminated — anything after
// a return (or a branch both of whose arms return) is unreachable.
func (em *Emitter) lowerBlock(b *ir.Builder, blk *ast.Block) {
	b.PushScope()
	defer b.PopScope()

	for _, s := range blk.Stmts {
		if b.Terminated() {
			return
		}
		em.lowerStmt(b, s)
	}
}

func (em *Emitter) lowerStmt(b *ir.Builder, s ast.Stmt) {
	switch x := s.(type) {
	case *ast.Block:
		em.lowerBlock(b, x)
	case *ast.ExprStmt:
		if em.lowerExpr(b, x.X) {
			b.Emit(ir.Instruction{Op: ir.Pop})
		}
	case *ast.VarDecl:
		em.lowerVarDecl(b, x)
	case *ast.If:
		em.lowerIf(b, x)
	case *ast.While:
		em.lowerWhile(b, x)
	case *ast.Return:
		em.lowerReturn(b, x)
	}
}

func (em *Emitter) lowerVarDecl(b *ir.Builder, x *ast.VarDecl) {
	em.lowerExpr(b, x.Value)
	id := b.DeclareVar(x.Name, x.Value.GetType())
	b.Emit(ir.Instruction{Op: ir.Store, Var: id})
}

// lowerIf lowers the condition (applying the `if not` surface negation, if
// present) and branches to freshly opened then/else blocks, rejoining in a
// shared successor block unless a branch already returned.
func (em *Emitter) lowerIf(b *ir.Builder, x *ast.If) {
	em.lowerExpr(b, x.Cond)
	if x.Not {
		b.Emit(ir.Instruction{Op: ir.Not})
	}

	thenBlk := b.NewBlock()
	after := b.NewBlock()
	elseBlk := after
	if x.Else != nil {
		elseBlk = b.NewBlock()
	}
	b.Emit(ir.Instruction{Op: ir.CondBr, Then: thenBlk, Else: elseBlk})

	b.SetBlock(thenBlk)
	em.lowerBlock(b, x.Then)
	if !b.Terminated() {
		b.Emit(ir.Instruction{Op: ir.Br, Then: after})
	}

	if x.Else != nil {
		b.SetBlock(elseBlk)
		em.lowerBlock(b, x.Else)
		if !b.Terminated() {
			b.Emit(ir.Instruction{Op: ir.Br, Then: after})
		}
	}

	b.SetBlock(after)
}

// lowerWhile opens a header block re-entered on every iteration, a body
// block, and an after block. CheckYield is emitted at the end of the body,
// immediately before the back-edge to header, so the collector only ever
// gets a chance to run after an iteration actually completes — never before
// the first condition check, and never for a body that always returns.
func (em *Emitter) lowerWhile(b *ir.Builder, x *ast.While) {
	header := b.NewBlock()
	body := b.NewBlock()
	after := b.NewBlock()

	b.Emit(ir.Instruction{Op: ir.Br, Then: header})

	b.SetBlock(header)
	em.lowerExpr(b, x.Cond)
	b.Emit(ir.Instruction{Op: ir.CondBr, Then: body, Else: after})

	b.SetBlock(body)
	em.lowerBlock(b, x.Body)
	if !b.Terminated() {
		b.Emit(ir.Instruction{Op: ir.CheckYield})
		b.Emit(ir.Instruction{Op: ir.Br, Then: header})
	}

	b.SetBlock(after)
}

func (em *Emitter) lowerReturn(b *ir.Builder, x *ast.Return) {
	if x.Value != nil {
		em.lowerExpr(b, x.Value)
	}
	b.Emit(ir.Instruction{Op: ir.Ret})
}
