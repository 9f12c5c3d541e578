package semantic_test

import (
	"testing"

	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/parser"
	"github.com/lumalang/luma/internal/semantic"
	"github.com/lumalang/luma/internal/types"
)

func analyze(t *testing.T, src string) (*ast.Program, *semantic.Analyzer, error) {
	t.Helper()
	program, errs := parser.ParseProgram(src)
	if len(errs) > 0 {
		t.Fatalf("unexpected parse errors: %v", errs)
	}
	a := semantic.NewAnalyzer()
	return program, a, a.Analyze(program)
}

func findFunc(program *ast.Program, name string) *ast.FuncDecl {
	for _, pkg := range program.Packages {
		for _, f := range pkg.Files {
			for _, fn := range f.Functions {
				if fn.Name == name && !fn.IsMethod() {
					return fn
				}
			}
		}
	}
	return nil
}

func TestArithmeticPromotion(t *testing.T) {
	src := `func main(): int {
		let a: int = 3;
		let b: number = 2.5;
		let c: number = a + b;
		return 0;
	}`
	_, _, err := analyze(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIntToNumberAssignmentRejectedOutsideArithmetic(t *testing.T) {
	src := `func main(): int {
		let x: number = 3;
		return 0;
	}`
	_, _, err := analyze(t, src)
	if err == nil {
		t.Fatalf("expected int-to-number assignment without arithmetic to be rejected")
	}
}

func TestCallArgumentIntToNumberRejected(t *testing.T) {
	src := `func f(n: number): int { return 0; }
	func main(): int { return f(3); }`
	_, _, err := analyze(t, src)
	if err == nil {
		t.Fatalf("expected call argument int-to-number to be rejected")
	}
}

func TestComparisonBetweenIntAndNumberRejected(t *testing.T) {
	src := `func main(): int {
		let a: int = 3;
		let b: number = 2.5;
		if a < b { return 1; }
		return 0;
	}`
	_, _, err := analyze(t, src)
	if err == nil {
		t.Fatalf("expected int/number comparison to be rejected")
	}
}

func TestStructMethodDispatchMangling(t *testing.T) {
	src := `struct P { x: int }
	func P.get(): int { return self.x; }
	func main(): int { let p = P { x: 42 }; return p.get(); }`

	program, _, err := analyze(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	main := findFunc(program, "main")
	if main == nil {
		t.Fatal("main not found")
	}
	ret := main.Body.Stmts[1].(*ast.Return)
	call := ret.Value.(*ast.CallExpr)
	if call.SymbolName != "_Lmain_P_get" {
		t.Fatalf("expected mangled symbol _Lmain_P_get, got %q", call.SymbolName)
	}
}

func TestEnumVariantConstruction(t *testing.T) {
	src := `enum E { A(int), B }
	func main(): int { let e = E.A(7); return 0; }`

	program, _, err := analyze(t, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	main := findFunc(program, "main")
	decl := main.Body.Stmts[0].(*ast.VarDecl)
	call := decl.Value.(*ast.CallExpr)
	if !call.IsEnumCtor || call.EnumIdx != 0 {
		t.Fatalf("expected enum ctor with idx 0, got %+v", call)
	}
	if call.GetType().Kind() != types.Enum {
		t.Fatalf("expected result type Enum, got %s", call.GetType())
	}
}

func TestIncompatibleVarDeclType(t *testing.T) {
	src := `func main(): int { let x: int = true; return 0; }`
	_, _, err := analyze(t, src)
	if err == nil {
		t.Fatal("expected an error")
	}
	se := err.(*semantic.Error)
	if se.Kind != semantic.ErrIncompatibleTypesInVariableDefinition {
		t.Fatalf("expected %s, got %s", semantic.ErrIncompatibleTypesInVariableDefinition, se.Kind)
	}
}

func TestCallNotEnoughArguments(t *testing.T) {
	src := `func f(a: int, b: int): int { return a + b; }
	func main(): int { return f(1); }`
	_, _, err := analyze(t, src)
	if err == nil {
		t.Fatal("expected an error")
	}
	se := err.(*semantic.Error)
	if se.Kind != semantic.ErrCallNotEnoughArguments {
		t.Fatalf("expected %s, got %s", semantic.ErrCallNotEnoughArguments, se.Kind)
	}
}

func TestSubscriptWithStringIndex(t *testing.T) {
	src := `func main(): int { let a = [1, 2, 3]; let b: string = "x"; return a[b]; }`
	_, _, err := analyze(t, src)
	if err == nil {
		t.Fatal("expected an error")
	}
	se := err.(*semantic.Error)
	if se.Kind != semantic.ErrValueCannotBeUsedAsIndex {
		t.Fatalf("expected %s, got %s", semantic.ErrValueCannotBeUsedAsIndex, se.Kind)
	}
}

func TestSelfOutsideMethod(t *testing.T) {
	src := `func main(): int { let x = self; return 0; }`
	_, _, err := analyze(t, src)
	if err == nil {
		t.Fatal("expected an error")
	}
	se := err.(*semantic.Error)
	if se.Kind != semantic.ErrCannotUseSelfOutsideOfMethod {
		t.Fatalf("expected %s, got %s", semantic.ErrCannotUseSelfOutsideOfMethod, se.Kind)
	}
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	src := `struct P { x: int }
	func P.get(): int { return self.x; }
	func main(): int { let p = P { x: 42 }; return p.get(); }`

	program1, _, err := analyze(t, src)
	if err != nil {
		t.Fatalf("first analysis failed: %v", err)
	}
	main1 := findFunc(program1, "main")
	sym1 := main1.Body.Stmts[1].(*ast.Return).Value.(*ast.CallExpr).SymbolName

	if err := semantic.NewAnalyzer().Analyze(program1); err != nil {
		t.Fatalf("second analysis failed: %v", err)
	}
	sym2 := main1.Body.Stmts[1].(*ast.Return).Value.(*ast.CallExpr).SymbolName

	if sym1 != sym2 {
		t.Fatalf("mangled names differ across runs: %q vs %q", sym1, sym2)
	}
}
