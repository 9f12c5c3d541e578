package ir

import "github.com/lumalang/luma/internal/types"

// StringMap interns string constants to integer ids, shared by every
// function in a Module.
type StringMap struct {
	byValue map[string]int
	values  []string
}

// NewStringMap creates an empty StringMap.
func NewStringMap() *StringMap {
	return &StringMap{byValue: make(map[string]int)}
}

// Intern returns the id for s, assigning a new one if this is the first
// occurrence.
func (m *StringMap) Intern(s string) int {
	if id, ok := m.byValue[s]; ok {
		return id
	}
	id := len(m.values)
	m.byValue[s] = id
	m.values = append(m.values, s)
	return id
}

// Value returns the string constant at id.
func (m *StringMap) Value(id int) string { return m.values[id] }

// Variable is one local of a Function: a stable id and its canonical type.
type Variable struct {
	ID   VarID
	Type *types.Type
}

// Block is a basic block: a straight-line instruction sequence ending in
// exactly one terminator (Ret, Br, or CondBr) once passed to the backend.
type Block struct {
	Instrs []Instruction
}

// Signature is a function's parameter and return types in canonical form.
type Signature struct {
	Params  []*types.Type
	Returns []*types.Type
}

// Function is one IR function: its mangled id, signature, locals, and
// basic blocks. Block 0 is always the entry block.
type Function struct {
	ID        string
	Signature Signature
	Variables []Variable
	Blocks    []*Block
}

// Module is a compiled unit: every function produced by internal/emit plus
// the shared string pool.
type Module struct {
	Functions []*Function
	Strings   *StringMap
}

// NewModule creates an empty Module with a fresh StringMap.
func NewModule() *Module {
	return &Module{Strings: NewStringMap()}
}
