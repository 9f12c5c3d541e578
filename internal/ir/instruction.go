package ir

import "github.com/lumalang/luma/internal/types"

// VarID identifies a variable within a Function; variables are numbered in
// declaration order starting at 0 (methods reserve 0 for `self`).
type VarID int

// BlockID identifies a Block within a Function; the entry block is always 0.
type BlockID int

// Instruction is one stack-machine operation. Only the fields relevant to
// Op are meaningful; the rest are zero. This mirrors the teacher's
// single-struct instruction shape (operands as plain fields) rather than a
// tagged union, since Go has no compact sum-type encoding for it.
type Instruction struct {
	Op Op

	// Dup
	K int

	// Constants
	IntVal    int64
	NumberVal float64
	BoolVal   bool
	StringRef int

	// Load/Store/Tee
	Var VarID

	// Br/CondBr
	Then BlockID
	Else BlockID // unused by Br

	// Call
	Symbol string

	// Heap aggregates
	N         int // NewArray size / NewObject field count
	Idx       int // GetObject/SetObject field index
	ElemType  *types.Type
	FieldType *types.Type
}
