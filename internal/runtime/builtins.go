package runtime

import "fmt"

// Builtin is the shape every surface-callable runtime function has: the
// context plus its raw word arguments, threading through the same 0/1
// bool-byte and length-prefixed string conventions codegen uses.
type Builtin func(c *Context, args []uint64)

// Builtins maps each of the five names the surface language exposes to its
// implementation, in the parameter order codegen.builtinParams records.
var Builtins = map[string]Builtin{
	"print":      builtinPrint,
	"println":    builtinPrintln,
	"printint":   builtinPrintInt,
	"printarray": builtinPrintArray,
	"assert":     builtinAssert,
}

func builtinPrint(c *Context, args []uint64) {
	fmt.Fprint(c.out, c.StringValue(args[0]))
}

func builtinPrintln(c *Context, args []uint64) {
	fmt.Fprintln(c.out, c.StringValue(args[0]))
}

func builtinPrintInt(c *Context, args []uint64) {
	fmt.Fprintln(c.out, int64(args[0]))
}

func builtinPrintArray(c *Context, args []uint64) {
	handle := args[0]
	n := c.ArrayLen(handle)
	fmt.Fprint(c.out, "[")
	for i := int64(0); i < n; i++ {
		if i > 0 {
			fmt.Fprint(c.out, ", ")
		}
		fmt.Fprint(c.out, int64(c.ArrayGet(handle, i)))
	}
	fmt.Fprintln(c.out, "]")
}

func builtinAssert(c *Context, args []uint64) {
	if args[0] == 0 {
		panic("runtime: assertion failed")
	}
}
