package runtime

import (
	"encoding/binary"
	"fmt"
)

// CreateArray allocates an array of n elements, each zero-initialized, and
// returns its handle.
func (c *Context) CreateArray(n int64) uint64 {
	return c.alloc(&allocation{kind: allocArray, slots: make([]uint64, n)})
}

// ArrayGet reads element index of the array at handle.
func (c *Context) ArrayGet(handle uint64, index int64) uint64 {
	a := c.mustArray(handle, "array_get")
	c.checkArrayBounds(a, index, "array_get")
	return a.slots[index]
}

// ArraySet writes value into element index of the array at handle.
func (c *Context) ArraySet(handle uint64, index int64, value uint64) {
	a := c.mustArray(handle, "array_set")
	c.checkArrayBounds(a, index, "array_set")
	a.slots[index] = value
}

// ArrayLen reports the element count of the array at handle.
func (c *Context) ArrayLen(handle uint64) int64 {
	a := c.mustArray(handle, "array_len")
	return int64(len(a.slots))
}

func (c *Context) checkArrayBounds(a *allocation, index int64, op string) {
	if index < 0 || index >= int64(len(a.slots)) {
		panic(fmt.Sprintf("runtime: %s index %d out of range (length %d)", op, index, len(a.slots)))
	}
}

// CreateObject allocates a struct or enum-variant payload of nFields words,
// each zero-initialized, and returns its handle.
func (c *Context) CreateObject(nFields int64) uint64 {
	return c.alloc(&allocation{kind: allocObject, slots: make([]uint64, nFields)})
}

// ObjectGet reads field idx of the object at handle.
func (c *Context) ObjectGet(handle uint64, idx int64) uint64 {
	a := c.mustObject(handle, "object_get")
	return a.slots[idx]
}

// ObjectSet writes value into field idx of the object at handle.
func (c *Context) ObjectSet(handle uint64, idx int64, value uint64) {
	a := c.mustObject(handle, "object_set")
	a.slots[idx] = value
}

func (c *Context) mustArray(handle uint64, op string) *allocation {
	a, ok := c.heap[handle]
	if !ok || a.kind != allocArray {
		panic(fmt.Sprintf("runtime: %s on a non-array handle", op))
	}
	return a
}

func (c *Context) mustObject(handle uint64, op string) *allocation {
	a, ok := c.heap[handle]
	if !ok || a.kind != allocObject {
		panic(fmt.Sprintf("runtime: %s on a non-object handle", op))
	}
	return a
}

// InternStringData registers a string already encoded in the runtime's
// length-prefixed wire form (see StringABI) and returns its handle. Used by
// the code generator's anonymous-data path: the bytes are a compile-time
// constant shared by every execution of the instruction, but each execution
// gets its own tracked, independently collectible handle.
func (c *Context) InternStringData(data []byte) uint64 {
	return c.alloc(&allocation{kind: allocString, bytes: data})
}

// NewString encodes s in the runtime's wire form and interns it, returning
// its handle.
func (c *Context) NewString(s string) uint64 {
	return c.InternStringData(StringABI(s))
}

// StringValue decodes the string at handle back to a Go string.
func (c *Context) StringValue(handle uint64) string {
	a, ok := c.heap[handle]
	if !ok || a.kind != allocString {
		panic("runtime: string value requested for a non-string handle")
	}
	n := binary.LittleEndian.Uint64(a.bytes[:8])
	return string(a.bytes[8 : 8+n])
}

// StringABI renders s in the runtime's internal string representation: an
// 8-byte little-endian length prefix followed by the raw UTF-8 bytes.
func StringABI(s string) []byte {
	buf := make([]byte, 8+len(s))
	binary.LittleEndian.PutUint64(buf[:8], uint64(len(s)))
	copy(buf[8:], s)
	return buf
}
