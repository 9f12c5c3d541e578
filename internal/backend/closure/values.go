package closure

import (
	"math"

	"github.com/lumalang/luma/internal/codegen"
)

func (cb *Backend) IConst(i int64) codegen.Value {
	w := uint64(i)
	return value(func(fr *execFrame) uint64 { return w })
}

func (cb *Backend) FConst(f float64) codegen.Value {
	w := math.Float64bits(f)
	return value(func(fr *execFrame) uint64 { return w })
}

func (cb *Backend) IAdd(a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 { return uint64(int64(av(fr)) + int64(bv(fr))) })
}

func (cb *Backend) ISub(a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 { return uint64(int64(av(fr)) - int64(bv(fr))) })
}

func (cb *Backend) IMul(a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 { return uint64(int64(av(fr)) * int64(bv(fr))) })
}

func (cb *Backend) SDiv(a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 { return uint64(int64(av(fr)) / int64(bv(fr))) })
}

func (cb *Backend) SMod(a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 { return uint64(int64(av(fr)) % int64(bv(fr))) })
}

func (cb *Backend) FAdd(a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 {
		return math.Float64bits(asFloat(av(fr)) + asFloat(bv(fr)))
	})
}

func (cb *Backend) FSub(a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 {
		return math.Float64bits(asFloat(av(fr)) - asFloat(bv(fr)))
	})
}

func (cb *Backend) FMul(a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 {
		return math.Float64bits(asFloat(av(fr)) * asFloat(bv(fr)))
	})
}

func (cb *Backend) FDiv(a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 {
		return math.Float64bits(asFloat(av(fr)) / asFloat(bv(fr)))
	})
}

func asFloat(w uint64) float64 { return math.Float64frombits(w) }

func boolWord(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func (cb *Backend) ICmp(op codegen.CmpOp, a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 {
		x, y := int64(av(fr)), int64(bv(fr))
		switch op {
		case codegen.CmpEq:
			return boolWord(x == y)
		case codegen.CmpNe:
			return boolWord(x != y)
		case codegen.CmpLt:
			return boolWord(x < y)
		case codegen.CmpGt:
			return boolWord(x > y)
		case codegen.CmpLe:
			return boolWord(x <= y)
		case codegen.CmpGe:
			return boolWord(x >= y)
		default:
			return 0
		}
	})
}

func (cb *Backend) FCmp(op codegen.CmpOp, a, b codegen.Value) codegen.Value {
	av, bv := asValue(a), asValue(b)
	return value(func(fr *execFrame) uint64 {
		x, y := asFloat(av(fr)), asFloat(bv(fr))
		switch op {
		case codegen.CmpEq:
			return boolWord(x == y)
		case codegen.CmpNe:
			return boolWord(x != y)
		case codegen.CmpLt:
			return boolWord(x < y)
		case codegen.CmpGt:
			return boolWord(x > y)
		case codegen.CmpLe:
			return boolWord(x <= y)
		case codegen.CmpGe:
			return boolWord(x >= y)
		default:
			return 0
		}
	})
}

func (cb *Backend) ToFloat(v codegen.Value) codegen.Value {
	vv := asValue(v)
	return value(func(fr *execFrame) uint64 { return math.Float64bits(float64(int64(vv(fr)))) })
}

func (cb *Backend) ToInt(v codegen.Value) codegen.Value {
	vv := asValue(v)
	return value(func(fr *execFrame) uint64 { return uint64(int64(asFloat(vv(fr)))) })
}

// AnonData captures bytes as a compile-time constant and, on every
// evaluation, interns a fresh tracked string handle for it. Re-evaluating
// the same AnonData value twice would mint two distinct handles for what
// should be one constant; internal/emit never Dups a LoadConstString
// result (Dup is used for the object/array construction discipline and by
// lowerAssign, whose extra copy of an assigned value is discarded by Pop
// without being evaluated), so in practice every AnonData value is read
// exactly once.
func (cb *Backend) AnonData(bytes []byte) codegen.Value {
	data := bytes
	return value(func(fr *execFrame) uint64 { return fr.ctx.InternStringData(data) })
}
