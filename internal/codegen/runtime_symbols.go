package codegen

import (
	"github.com/lumalang/luma/internal/runtime"
)

// Local aliases for the runtime's helper-symbol names, kept short for the
// big switch in translate.go; none of these is ever the target of an
// ir.Call (the emitter never produces one to them), only of the
// heap/safe-point IR ops translated there.
const (
	symCreateArray  = runtime.SymCreateArray
	symCreateObject = runtime.SymCreateObject
	symArrayGet     = runtime.SymArrayGet
	symArraySet     = runtime.SymArraySet
	symObjectGet    = runtime.SymObjectGet
	symObjectSet    = runtime.SymObjectSet
	symCheckYield   = runtime.SymCheckYield
)

// builtinParams gives the parameter shape of each of the five builtins the
// surface language exposes, keyed by their mangled symbol (semantic's
// mangleBuiltin: runtime.BuiltinPrefix + name) and excluding the leading
// context pointer every call already carries. None of the five return a
// value.
var builtinParams = map[string][]BackendType{
	runtime.BuiltinPrefix + "print":      {Ptr},
	runtime.BuiltinPrefix + "println":    {Ptr},
	runtime.BuiltinPrefix + "printint":   {I64},
	runtime.BuiltinPrefix + "printarray": {Ptr},
	runtime.BuiltinPrefix + "assert":     {I8},
}

// stringABIBytes renders s in the runtime's internal string representation.
func stringABIBytes(s string) []byte {
	return runtime.StringABI(s)
}
