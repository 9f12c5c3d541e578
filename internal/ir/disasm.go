package ir

import (
	"fmt"
	"strings"
)

// Disassemble renders m as human-readable text: one function per section,
// one instruction per line. Grounded on the teacher's
// internal/bytecode/disasm.go line-per-instruction convention.
func Disassemble(m *Module) string {
	var sb strings.Builder
	for _, fn := range m.Functions {
		disassembleFunction(&sb, fn)
	}
	return sb.String()
}

func disassembleFunction(sb *strings.Builder, fn *Function) {
	fmt.Fprintf(sb, "func %s(%d param(s)) -> %d result(s)\n", fn.ID, len(fn.Signature.Params), len(fn.Signature.Returns))
	for i, v := range fn.Variables {
		fmt.Fprintf(sb, "  var %d: %s\n", i, v.Type)
	}
	for bi, blk := range fn.Blocks {
		fmt.Fprintf(sb, "  block %d:\n", bi)
		for _, instr := range blk.Instrs {
			fmt.Fprintf(sb, "    %s\n", disassembleInstr(instr))
		}
	}
}

func disassembleInstr(instr Instruction) string {
	switch instr.Op {
	case Dup:
		return fmt.Sprintf("dup %d", instr.K)
	case LoadConstInt:
		return fmt.Sprintf("load.const.int %d", instr.IntVal)
	case LoadConstNumber:
		return fmt.Sprintf("load.const.number %g", instr.NumberVal)
	case LoadConstBool:
		return fmt.Sprintf("load.const.bool %v", instr.BoolVal)
	case LoadConstString:
		return fmt.Sprintf("load.const.string #%d", instr.StringRef)
	case Load, Store, Tee:
		return fmt.Sprintf("%s v%d", instr.Op, instr.Var)
	case Br:
		return fmt.Sprintf("br block%d", instr.Then)
	case CondBr:
		return fmt.Sprintf("condbr block%d block%d", instr.Then, instr.Else)
	case Call:
		return fmt.Sprintf("call %s", instr.Symbol)
	case NewArray:
		return fmt.Sprintf("new_array %d", instr.N)
	case LoadArray:
		return fmt.Sprintf("load_array %s", instr.ElemType)
	case StoreArray:
		return fmt.Sprintf("store_array %s", instr.ElemType)
	case NewObject:
		return fmt.Sprintf("new_object %d", instr.N)
	case GetObject:
		return fmt.Sprintf("get_object %d %s", instr.Idx, instr.FieldType)
	case SetObject:
		return fmt.Sprintf("set_object %d %s", instr.Idx, instr.FieldType)
	default:
		return instr.Op.String()
	}
}
