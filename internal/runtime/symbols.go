package runtime

// Names of the runtime helpers the code generator calls directly for
// heap-aggregate and safe-point IR ops. Exported here, rather than kept
// private to internal/codegen, so every Backend dispatches on the same
// literal strings instead of each defining its own copy that could drift.
const (
	SymCreateArray  = "__create_array"
	SymCreateObject = "__create_object"
	SymArrayGet     = "__array_get"
	SymArraySet     = "__array_set"
	SymObjectGet    = "__object_get"
	SymObjectSet    = "__object_set"
	SymCheckYield   = "__check_yield"
)

// BuiltinPrefix is the mangled-symbol prefix semantic's mangleBuiltin gives
// every surface builtin (print, println, printint, printarray, assert).
const BuiltinPrefix = "_Lbuiltins_"
