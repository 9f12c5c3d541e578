package runtime_test

import (
	"testing"

	"github.com/lumalang/luma/internal/runtime"
)

func TestArrayCreateGetSet(t *testing.T) {
	c := newTestContext()
	h := c.CreateArray(3)
	c.ArraySet(h, 0, 10)
	c.ArraySet(h, 1, 20)
	c.ArraySet(h, 2, 30)

	for i, want := range []uint64{10, 20, 30} {
		if got := c.ArrayGet(h, int64(i)); got != want {
			t.Fatalf("element %d = %d, want %d", i, got, want)
		}
	}
	if n := c.ArrayLen(h); n != 3 {
		t.Fatalf("len = %d, want 3", n)
	}
}

func TestArrayOutOfRangePanics(t *testing.T) {
	c := newTestContext()
	h := c.CreateArray(2)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on out-of-range access")
		}
	}()
	c.ArrayGet(h, 5)
}

func TestObjectCreateGetSet(t *testing.T) {
	c := newTestContext()
	h := c.CreateObject(2)
	c.ObjectSet(h, 0, 7)
	c.ObjectSet(h, 1, 8)

	if got := c.ObjectGet(h, 0); got != 7 {
		t.Fatalf("field 0 = %d, want 7", got)
	}
	if got := c.ObjectGet(h, 1); got != 8 {
		t.Fatalf("field 1 = %d, want 8", got)
	}
}

func TestStringRoundTrip(t *testing.T) {
	c := newTestContext()
	h := c.NewString("hello, luma")
	if got := c.StringValue(h); got != "hello, luma" {
		t.Fatalf("string value = %q, want %q", got, "hello, luma")
	}
}

func TestStringABIMatchesWireFormat(t *testing.T) {
	buf := runtime.StringABI("ok")
	if len(buf) != 8+2 {
		t.Fatalf("wire length = %d, want 10", len(buf))
	}
}
