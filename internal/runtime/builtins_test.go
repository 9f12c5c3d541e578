package runtime_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lumalang/luma/internal/runtime"
)

func TestBuiltinPrintlnWritesDecodedString(t *testing.T) {
	var out bytes.Buffer
	c := runtime.NewContext(&out, runtime.NewStackMapTable())
	h := c.NewString("hi")
	runtime.Builtins["println"](c, []uint64{h})

	if got := strings.TrimSpace(out.String()); got != "hi" {
		t.Fatalf("output = %q, want %q", got, "hi")
	}
}

func TestBuiltinPrintArrayFormatsElements(t *testing.T) {
	var out bytes.Buffer
	c := runtime.NewContext(&out, runtime.NewStackMapTable())
	h := c.CreateArray(3)
	c.ArraySet(h, 0, 1)
	c.ArraySet(h, 1, 2)
	c.ArraySet(h, 2, 3)
	runtime.Builtins["printarray"](c, []uint64{h})

	if got := strings.TrimSpace(out.String()); got != "[1, 2, 3]" {
		t.Fatalf("output = %q, want %q", got, "[1, 2, 3]")
	}
}

func TestBuiltinAssertPanicsOnFalse(t *testing.T) {
	var out bytes.Buffer
	c := runtime.NewContext(&out, runtime.NewStackMapTable())
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic on a failed assertion")
		}
	}()
	runtime.Builtins["assert"](c, []uint64{0})
}
