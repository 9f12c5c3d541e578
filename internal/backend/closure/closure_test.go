package closure_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lumalang/luma/internal/backend/closure"
	"github.com/lumalang/luma/internal/codegen"
	"github.com/lumalang/luma/internal/emit"
	"github.com/lumalang/luma/internal/parser"
	"github.com/lumalang/luma/internal/runtime"
	"github.com/lumalang/luma/internal/semantic"
)

func compileAndRun(t *testing.T, src, entry string, args []uint64) ([]uint64, *bytes.Buffer) {
	t.Helper()
	program, errs := parser.ParseProgram(src)
	if len(errs) > 0 {
		t.Fatalf("parse errors: %v", errs)
	}
	a := semantic.NewAnalyzer()
	if err := a.Analyze(program); err != nil {
		t.Fatalf("semantic error: %v", err)
	}
	mod := emit.NewEmitter(a.Types()).EmitProgram(program)

	be := closure.New()
	if err := codegen.NewTranslator(be).Translate(mod); err != nil {
		t.Fatalf("translate: %v", err)
	}
	p := be.Program()

	var out bytes.Buffer
	ctx := runtime.NewContext(&out, p.StackMaps())
	results, err := p.Call(ctx, entry, args)
	if err != nil {
		t.Fatalf("call %s: %v", entry, err)
	}
	return results, &out
}

func TestArithmeticRoundTrip(t *testing.T) {
	results, _ := compileAndRun(t, `func main(): int { return 1 + 2 * 3; }`, "_Lmain_main", nil)
	if len(results) != 1 || int64(results[0]) != 7 {
		t.Fatalf("results = %v, want [7]", results)
	}
}

func TestWhileLoopAccumulates(t *testing.T) {
	src := `
		func main(): int {
			let i: int = 0;
			let sum: int = 0;
			while i < 5 {
				sum = sum + i;
				i = i + 1;
			}
			return sum;
		}`
	results, _ := compileAndRun(t, src, "_Lmain_main", nil)
	if len(results) != 1 || int64(results[0]) != 10 {
		t.Fatalf("results = %v, want [10]", results)
	}
}

func TestFunctionCallThreadsArguments(t *testing.T) {
	src := `
		func double(x: int): int { return x * 2; }
		func main(): int { return double(21); }`
	results, _ := compileAndRun(t, src, "_Lmain_main", nil)
	if len(results) != 1 || int64(results[0]) != 42 {
		t.Fatalf("results = %v, want [42]", results)
	}
}

func TestArrayLiteralAndIndexing(t *testing.T) {
	src := `func main(): int { let a = [10, 20, 30]; return a[1]; }`
	results, _ := compileAndRun(t, src, "_Lmain_main", nil)
	if len(results) != 1 || int64(results[0]) != 20 {
		t.Fatalf("results = %v, want [20]", results)
	}
}

func TestPrintBuiltinWritesOutput(t *testing.T) {
	src := `func main(): int { println("ready"); return 0; }`
	_, out := compileAndRun(t, src, "_Lmain_main", nil)
	if got := strings.TrimSpace(out.String()); got != "ready" {
		t.Fatalf("output = %q, want %q", got, "ready")
	}
}

func TestStructFieldReadWrite(t *testing.T) {
	src := `
		struct Point { x: int, y: int }
		func main(): int {
			let p = Point { x: 3, y: 4 };
			return p.x + p.y;
		}`
	results, _ := compileAndRun(t, src, "_Lmain_main", nil)
	if len(results) != 1 || int64(results[0]) != 7 {
		t.Fatalf("results = %v, want [7]", results)
	}
}

func TestLoopTriggersCollectionWithoutCorruptingLiveState(t *testing.T) {
	src := `
		func main(): int {
			let total: int = 0;
			let i: int = 0;
			while i < 50 {
				let scratch = [i, i, i];
				total = total + scratch[0];
				i = i + 1;
			}
			return total;
		}`
	results, _ := compileAndRun(t, src, "_Lmain_main", nil)
	want := int64(0)
	for i := int64(0); i < 50; i++ {
		want += i
	}
	if len(results) != 1 || int64(results[0]) != want {
		t.Fatalf("results = %v, want [%d]", results, want)
	}
}
