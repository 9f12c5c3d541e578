package emit_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/lumalang/luma/internal/emit"
	"github.com/lumalang/luma/internal/ir"
	"github.com/lumalang/luma/internal/parser"
	"github.com/lumalang/luma/internal/semantic"
)

func compile(t *testing.T, src string) *ir.Module {
	t.Helper()
	program, errs := parser.ParseProgram(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	a := semantic.NewAnalyzer()
	if err := a.Analyze(program); err != nil {
		t.Fatalf("unexpected semantic error: %v", err)
	}
	return emit.NewEmitter(a.Types()).EmitProgram(program)
}

func findFn(m *ir.Module, id string) *ir.Function {
	for _, fn := range m.Functions {
		if fn.ID == id {
			return fn
		}
	}
	return nil
}

func TestExprStmtPopsUnusedCallResult(t *testing.T) {
	src := `func f(): int { return 1; }
	func main(): int { f(); return 0; }`
	m := compile(t, src)

	main := findFn(m, "_Lmain_main")
	if main == nil {
		t.Fatal("main function not emitted")
	}
	found := false
	for _, instr := range main.Blocks[0].Instrs {
		if instr.Op == ir.Pop {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Pop after the discarded call result, got:\n%s", ir.Disassemble(m))
	}
}

func TestMixedArithmeticPromotesIntOperand(t *testing.T) {
	src := `func main(): number {
		let a: int = 3;
		let b: number = 2.5;
		return a + b;
	}`
	m := compile(t, src)
	main := findFn(m, "_Lmain_main")

	promotes, adds := 0, 0
	for _, instr := range main.Blocks[0].Instrs {
		switch instr.Op {
		case ir.Promote:
			promotes++
		case ir.AddNumber:
			adds++
		}
	}
	if promotes != 1 {
		t.Fatalf("expected exactly 1 Promote, got %d", promotes)
	}
	if adds != 1 {
		t.Fatalf("expected AddNumber (not AddInt), got %d AddNumber instrs", adds)
	}
}

func TestEnumCtorBuildsTaggedObject(t *testing.T) {
	src := `enum Shape { Circle(int), Square }
	func main(): int { let s = Shape.Circle(7); return 0; }`
	m := compile(t, src)
	main := findFn(m, "_Lmain_main")

	var sawNewObject, sawTagStore bool
	for i, instr := range main.Blocks[0].Instrs {
		if instr.Op == ir.NewObject && instr.N == 2 {
			sawNewObject = true
		}
		if instr.Op == ir.SetObject && instr.Idx == 0 && i > 0 {
			sawTagStore = true
		}
	}
	if !sawNewObject {
		t.Fatal("expected NewObject(2) for a 1-payload variant (tag + 1 field)")
	}
	if !sawTagStore {
		t.Fatal("expected a SetObject storing the variant tag at field 0")
	}
}

func TestUnaryNotAndNegation(t *testing.T) {
	src := `func main(): bool {
		let x: int = 5;
		let y: int = -x;
		let ok: bool = not true;
		return ok;
	}`
	m := compile(t, src)
	main := findFn(m, "_Lmain_main")

	var sawNot, sawSub bool
	for _, instr := range main.Blocks[0].Instrs {
		if instr.Op == ir.Not {
			sawNot = true
		}
		if instr.Op == ir.SubInt {
			sawSub = true
		}
	}
	if !sawNot {
		t.Fatal("expected a Not instruction for `not true`")
	}
	if !sawSub {
		t.Fatal("expected unary `-x` lowered as 0 - x via SubInt")
	}
}

func TestMethodSelfIsVariableZero(t *testing.T) {
	src := `struct P { x: int }
	func P.getX(): int { return self.x; }
	func main(): int { let p = P { x: 1 }; return p.getX(); }`
	m := compile(t, src)

	method := findFn(m, "_Lmain_P_getX")
	if method == nil {
		t.Fatal("method not emitted")
	}
	if len(method.Variables) == 0 || method.Variables[0].ID != 0 {
		t.Fatal("expected self to be declared as variable 0")
	}
}

func TestWhileLoopChecksYieldOnBackEdge(t *testing.T) {
	src := `func main(): int {
		let i: int = 0;
		while i < 3 {
			i = i + 1;
		}
		return i;
	}`
	m := compile(t, src)
	main := findFn(m, "_Lmain_main")

	yields := 0
	for _, blk := range main.Blocks {
		if len(blk.Instrs) == 0 {
			continue
		}
		last := blk.Instrs[len(blk.Instrs)-1]
		for i, instr := range blk.Instrs {
			if instr.Op != ir.CheckYield {
				continue
			}
			yields++
			// CheckYield must sit at the end of the body, immediately
			// before the back-edge, not before the condition test: the
			// block it's in terminates with an unconditional Br (the
			// back-edge), never a CondBr (the condition check), and
			// there must be nothing but the terminator after it.
			if last.Op != ir.Br {
				t.Fatalf("CheckYield's block terminates with %v, want Br (the back-edge)", last.Op)
			}
			if i != len(blk.Instrs)-2 {
				t.Fatalf("CheckYield is not immediately before the back-edge terminator")
			}
		}
	}
	if yields == 0 {
		t.Fatal("expected at least one CheckYield before the loop's back-edge")
	}
}

func TestDisassemblySnapshot(t *testing.T) {
	src := `struct Point { x: int, y: int }
	func Point.sum(): int { return self.x + self.y; }
	func main(): int {
		let p = Point { x: 1, y: 2 };
		if p.sum() > 2 {
			return 1;
		}
		return 0;
	}`
	m := compile(t, src)
	snaps.MatchSnapshot(t, ir.Disassemble(m))
}
