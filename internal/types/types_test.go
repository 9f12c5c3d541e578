package types_test

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lumalang/luma/internal/types"
)

// typeComparer lets cmp.Diff walk slices of *types.Type without tripping
// over their unexported fields: two handles compare equal exactly when
// Equals does, matching the structural-or-identity rule the type itself
// defines.
var typeComparer = cmp.Comparer(func(a, b *types.Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equals(b)
})

func TestScalarsAreInterned(t *testing.T) {
	if types.IntegerType() != types.IntegerType() {
		t.Fatal("IntegerType() should return the same handle every call")
	}
	if types.BoolType() == types.StringType() {
		t.Fatal("distinct scalars must not share a handle")
	}
}

func TestArrayOfIsMemoized(t *testing.T) {
	a1 := types.ArrayOf(types.IntegerType())
	a2 := types.ArrayOf(types.IntegerType())
	if a1 != a2 {
		t.Fatal("ArrayOf(int) should return the same handle on repeated calls")
	}
	if !a1.Equals(a2) {
		t.Fatal("memoized arrays must compare equal")
	}

	nested := types.ArrayOf(a1)
	if nested.Elem() != a1 {
		t.Fatal("nested array element handle mismatch")
	}
}

func TestStructMutatedThenRead(t *testing.T) {
	spec := types.NameSpec{Package: "main", Name: "P"}
	st := types.NewStruct(spec)

	if fields := st.Fields(); len(fields) != 0 {
		t.Fatalf("freshly declared struct should have no fields, got %d", len(fields))
	}

	st.AddField("x", types.IntegerType())
	st.AddField("y", types.NumberType())

	idx, ft, ok := st.FieldByName("y")
	if !ok || idx != 1 || !ft.Equals(types.NumberType()) {
		t.Fatalf("FieldByName(y) = (%d, %v, %v), want (1, number, true)", idx, ft, ok)
	}

	fields := st.Fields()
	if len(fields) != 2 || fields[0].Name != "x" || fields[1].Name != "y" {
		t.Fatalf("unexpected field order: %+v", fields)
	}
}

func TestStructIdentityEquality(t *testing.T) {
	spec := types.NameSpec{Package: "main", Name: "P"}
	a := types.NewStruct(spec)
	b := types.NewStruct(spec)

	if a.Equals(b) {
		t.Fatal("distinct struct handles with the same spec must not be equal")
	}
	if !a.Equals(a) {
		t.Fatal("a struct handle must equal itself")
	}
}

func TestEnumVariants(t *testing.T) {
	spec := types.NameSpec{Package: "main", Name: "E"}
	e := types.NewEnum(spec)
	e.AddVariant("A", []*types.Type{types.IntegerType()})
	e.AddVariant("B", nil)

	idx, payload, ok := e.VariantByName("B")
	if !ok || idx != 1 || len(payload) != 0 {
		t.Fatalf("VariantByName(B) = (%d, %v, %v)", idx, payload, ok)
	}
}

func TestFunctionTypeStructuralEquality(t *testing.T) {
	f1 := types.NewFunction([]*types.Type{types.IntegerType()}, []*types.Type{types.BoolType()})
	f2 := types.NewFunction([]*types.Type{types.IntegerType()}, []*types.Type{types.BoolType()})
	if !f1.Equals(f2) {
		t.Fatal("function types with identical signatures should be structurally equal")
	}

	f3 := types.NewFunction([]*types.Type{types.NumberType()}, []*types.Type{types.BoolType()})
	if f1.Equals(f3) {
		t.Fatal("function types with different params must not be equal")
	}
}

func TestConcurrentFieldAppendAndRead(t *testing.T) {
	spec := types.NameSpec{Package: "main", Name: "P"}
	st := types.NewStruct(spec)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			st.AddField("f", types.IntegerType())
		}
	}()
	for i := 0; i < 50; i++ {
		_ = st.Fields()
	}
	wg.Wait()

	if len(st.Fields()) != 50 {
		t.Fatalf("expected 50 fields after concurrent writes, got %d", len(st.Fields()))
	}
}

func TestTypeCollectionDeclareLookup(t *testing.T) {
	c := types.NewTypeCollection()
	spec := types.NameSpec{Package: "main", Name: "P"}
	st := types.NewStruct(spec)
	c.Declare(spec, st)

	got, ok := c.Lookup(spec)
	if !ok || got != st {
		t.Fatalf("Lookup(%v) = (%v, %v), want (%v, true)", spec, got, ok, st)
	}

	if _, ok := c.Lookup(types.NameSpec{Package: "main", Name: "Missing"}); ok {
		t.Fatal("Lookup of an undeclared spec should fail")
	}
}

func TestStructFieldSnapshotIsIdempotent(t *testing.T) {
	spec := types.NameSpec{Package: "main", Name: "Point"}
	st := types.NewStruct(spec)
	st.AddField("x", types.IntegerType())
	st.AddField("y", types.IntegerType())
	st.AddMethod("len", types.NewFunction(nil, []*types.Type{types.NumberType()}))

	first := st.Fields()
	second := st.Fields()
	if diff := cmp.Diff(first, second, typeComparer); diff != "" {
		t.Fatalf("Fields() snapshots diverged across repeated calls (-first +second):\n%s", diff)
	}

	firstMethods := st.Methods()
	secondMethods := st.Methods()
	if diff := cmp.Diff(firstMethods, secondMethods, typeComparer); diff != "" {
		t.Fatalf("Methods() snapshots diverged across repeated calls (-first +second):\n%s", diff)
	}
}

func TestFunctionTypeSignatureSnapshotIsIdempotent(t *testing.T) {
	fn := types.NewFunction(
		[]*types.Type{types.IntegerType(), types.ArrayOf(types.StringType())},
		[]*types.Type{types.BoolType()},
	)

	if diff := cmp.Diff(fn.Params(), fn.Params(), typeComparer); diff != "" {
		t.Fatalf("Params() snapshots diverged across repeated calls (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(fn.Returns(), fn.Returns(), typeComparer); diff != "" {
		t.Fatalf("Returns() snapshots diverged across repeated calls (-first +second):\n%s", diff)
	}
}

func TestFunctionCollectionDeclareLookup(t *testing.T) {
	c := types.NewFunctionCollection()
	spec := types.NameSpec{Package: "main", Name: "f"}
	info := &types.FuncInfo{
		Spec:       spec,
		Sig:        types.NewFunction(nil, []*types.Type{types.IntegerType()}),
		SymbolName: "_Lmain_f",
	}
	c.Declare(info)

	got, ok := c.Lookup(spec)
	if !ok || got.SymbolName != "_Lmain_f" {
		t.Fatalf("Lookup(%v) = %+v, want SymbolName _Lmain_f", spec, got)
	}
}
