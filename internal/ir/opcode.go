// Package ir defines the stack-machine intermediate representation lowered
// from the typed AST and consumed by internal/codegen: a Module of
// Functions, each a sequence of Blocks of typed Instructions over an
// implicit operand stack.
//
// Grounded on the teacher's internal/bytecode package's OpCode enumeration
// and its doc-comment-per-opcode density, generalized from its 32-bit
// accumulator/register instruction format down to the spec's pure,
// variable-width stack machine.
package ir

// Op identifies an instruction's operation. The stack effect of each op is
// documented alongside it; "top" means the last-pushed value.
type Op int

const (
	// Nop does nothing.
	Nop Op = iota

	// Dup pushes a copy of the k-th value from the top (0 = the top itself).
	// Stack: [..., v_k, ..., v_0] -> [..., v_k, ..., v_0, v_k]
	Dup

	// Pop discards the top value. Emitted after an expression statement
	// whose expression left a value, so that value never leaks into a
	// later implicit return.
	// Stack: [a] -> []
	Pop

	// LoadConstInt pushes an i64 constant.
	// Stack: [] -> [int]
	LoadConstInt
	// LoadConstNumber pushes an f64 constant.
	// Stack: [] -> [number]
	LoadConstNumber
	// LoadConstBool pushes a bool constant (0/1 byte).
	// Stack: [] -> [bool]
	LoadConstBool
	// LoadConstString pushes a reference to an interned string (Module.Strings).
	// Stack: [] -> [stringref]
	LoadConstString

	// AddInt/SubInt/MulInt/DivInt/ModInt: integer arithmetic.
	// Stack: [a, b] -> [a OP b]
	AddInt
	SubInt
	MulInt
	DivInt
	ModInt
	// EquInt/NeqInt/LtInt/GtInt/LeqInt/GeqInt: integer comparison, pushes bool.
	// Stack: [a, b] -> [a OP b]
	EquInt
	NeqInt
	LtInt
	GtInt
	LeqInt
	GeqInt

	// AddNumber/.../GeqNumber: the Number-typed twins of the Int ops above.
	AddNumber
	SubNumber
	MulNumber
	DivNumber
	ModNumber
	EquNumber
	NeqNumber
	LtNumber
	GtNumber
	LeqNumber
	GeqNumber

	// And/Or: logical ops over bool bytes (0/1), non-short-circuiting.
	// Stack: [a, b] -> [a OP b]
	And
	Or
	// Not negates a bool byte (0/1). The declared opcode list has binary
	// logical ops only; unary `not` needs this to avoid synthesizing a
	// comparison against a literal at every use site.
	// Stack: [a] -> [!a]
	Not

	// Truncate converts a number to an int.
	// Stack: [number] -> [int]
	Truncate
	// Promote converts an int to a number.
	// Stack: [int] -> [number]
	Promote

	// Load pushes the value of a variable.
	// Stack: [] -> [value]
	Load
	// Store pops a value into a variable.
	// Stack: [value] -> []
	Store
	// Tee stores a value into a variable and leaves it on the stack.
	// Stack: [value] -> [value]
	Tee

	// Br unconditionally transfers control to a block.
	Br
	// CondBr pops a bool byte and branches to Then if nonzero, else Else.
	// Stack: [bool] -> []
	CondBr
	// Ret returns from the current function, popping the return value (if any).
	Ret

	// Call invokes a function by mangled symbol name, popping its arguments
	// and pushing its results in declaration order.
	Call
	// IndirectCall invokes the callee whose value is on top of the stack.
	// Implemented for completeness but never emitted, since the surface
	// language has no first-class function values.
	IndirectCall

	// NewArray allocates an array of N elements and pushes its handle.
	// Stack: [] -> [arrayref]
	NewArray
	// LoadArray pops index, array and pushes the loaded element.
	// Stack: [value?, index, array] -> [elem]  (no value for loads)
	LoadArray
	// StoreArray pops array, index, value and stores value at index.
	// Stack: [value, index, array] -> []
	StoreArray
	// NewObject allocates an object of N fields and pushes its handle.
	// Stack: [] -> [objectref]
	NewObject
	// GetObject pops an object handle and pushes the field at Idx.
	// Stack: [object] -> [value]
	GetObject
	// SetObject pops object and value and stores value into the field at Idx.
	// Stack: [value, object] -> []
	SetObject

	// CheckYield marks a cooperative safe point where the runtime may run a
	// collection.
	CheckYield
)

var opNames = map[Op]string{
	Nop: "nop", Dup: "dup", Pop: "pop",
	LoadConstInt: "load.const.int", LoadConstNumber: "load.const.number",
	LoadConstBool: "load.const.bool", LoadConstString: "load.const.string",
	AddInt: "add.i", SubInt: "sub.i", MulInt: "mul.i", DivInt: "div.i", ModInt: "mod.i",
	EquInt: "equ.i", NeqInt: "neq.i", LtInt: "lt.i", GtInt: "gt.i", LeqInt: "leq.i", GeqInt: "geq.i",
	AddNumber: "add.n", SubNumber: "sub.n", MulNumber: "mul.n", DivNumber: "div.n", ModNumber: "mod.n",
	EquNumber: "equ.n", NeqNumber: "neq.n", LtNumber: "lt.n", GtNumber: "gt.n", LeqNumber: "leq.n", GeqNumber: "geq.n",
	And: "and", Or: "or", Not: "not",
	Truncate: "truncate", Promote: "promote",
	Load: "load", Store: "store", Tee: "tee",
	Br: "br", CondBr: "condbr", Ret: "ret",
	Call: "call", IndirectCall: "indirect_call",
	NewArray: "new_array", LoadArray: "load_array", StoreArray: "store_array",
	NewObject: "new_object", GetObject: "get_object", SetObject: "set_object",
	CheckYield: "check_yield",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "unknown"
}
