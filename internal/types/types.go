// Package types owns the canonical, sharable type graph: interned scalar
// singletons, structurally memoized arrays, and struct/enum handles that
// are created once by the semantic analyzer's declaration pass and mutated
// in place by its resolution pass.
package types

import (
	"fmt"
	"strings"
	"sync"
)

// Kind names the outer shape of a Type.
type Kind int

const (
	Bad Kind = iota
	Integer
	Number
	String
	Bool
	UnknownReference
	Array
	Struct
	Enum
	Function
	Identifier // placeholder, used only during analysis
)

func (k Kind) String() string {
	switch k {
	case Bad:
		return "bad"
	case Integer:
		return "integer"
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	case UnknownReference:
		return "unknown_reference"
	case Array:
		return "array"
	case Struct:
		return "struct"
	case Enum:
		return "enum"
	case Function:
		return "function"
	case Identifier:
		return "identifier"
	default:
		return "invalid"
	}
}

// NameSpec is the canonical key for a declaration in the program:
// (package, name).
type NameSpec struct {
	Package string
	Name    string
}

func (s NameSpec) String() string { return s.Package + "." + s.Name }

// Field is one (name, Type) entry of a Struct.
type Field struct {
	Name string
	Type *Type
}

// Method is one (name, FunctionType) entry of a Struct.
type Method struct {
	Name string
	Sig  *Type // Kind == Function
}

// Variant is one (name, payload types) entry of an Enum.
type Variant struct {
	Name    string
	Payload []*Type
}

// Type is a handle to a shared, immutable-outer-shape type. Scalars are
// interned singletons; Struct and Enum handles are created once per
// declaration by Pass A of the semantic analyzer and have their bodies
// populated in place by Pass B, guarded by mu so that pass can write while
// later passes only read. Equality is structural on scalars
// and arrays, and by identity (via Spec) on struct/enum — see Equals.
type Type struct {
	kind Kind

	// Array
	elem *Type

	// Struct / Enum
	spec NameSpec

	mu       sync.RWMutex
	fields   []Field
	methods  []Method
	variants []Variant

	// Function
	params  []*Type
	returns []*Type

	// Identifier placeholder
	name string
}

// Kind reports the outer shape of t.
func (t *Type) Kind() Kind { return t.kind }

// Elem returns the element type of an Array type.
func (t *Type) Elem() *Type { return t.elem }

// Spec returns the declaration key of a Struct or Enum type.
func (t *Type) Spec() NameSpec { return t.spec }

// Name returns the placeholder name of an Identifier type.
func (t *Type) Name() string { return t.name }

var (
	badType              = &Type{kind: Bad}
	integerType          = &Type{kind: Integer}
	numberType           = &Type{kind: Number}
	stringType           = &Type{kind: String}
	boolType             = &Type{kind: Bool}
	unknownReferenceType = &Type{kind: UnknownReference}
)

// BadType is the interned singleton representing a type error.
func BadType() *Type { return badType }

// IntegerType is the interned `int` singleton.
func IntegerType() *Type { return integerType }

// NumberType is the interned `number` singleton.
func NumberType() *Type { return numberType }

// StringType is the interned `string` singleton.
func StringType() *Type { return stringType }

// BoolType is the interned `bool` singleton.
func BoolType() *Type { return boolType }

// UnknownReferenceType is the interned singleton used when a reference
// cannot be resolved to a concrete declaration.
func UnknownReferenceType() *Type { return unknownReferenceType }

var (
	arrayMu    sync.Mutex
	arrayCache = map[*Type]*Type{}
)

// ArrayOf returns the canonical Array(of) type, memoized so repeated calls
// with the same element type return the same handle.
func ArrayOf(of *Type) *Type {
	arrayMu.Lock()
	defer arrayMu.Unlock()
	if t, ok := arrayCache[of]; ok {
		return t
	}
	t := &Type{kind: Array, elem: of}
	arrayCache[of] = t
	return t
}

// NewStruct creates an empty canonical Struct type for spec, to be populated
// in place by Pass B. Called once per declaration by Pass A.
func NewStruct(spec NameSpec) *Type {
	return &Type{kind: Struct, spec: spec}
}

// NewEnum creates an empty canonical Enum type for spec, to be populated in
// place by Pass B. Called once per declaration by Pass A.
func NewEnum(spec NameSpec) *Type {
	return &Type{kind: Enum, spec: spec}
}

// NewFunction builds a Function type from parameter and return type lists.
// Function types are not interned: each declaration gets its own handle.
func NewFunction(params, returns []*Type) *Type {
	return &Type{kind: Function, params: params, returns: returns}
}

// NewIdentifier builds a placeholder Identifier type. Only valid as a
// transient value during Pass A/B; no canonical type may contain one once
// Pass B completes.
func NewIdentifier(name string) *Type {
	return &Type{kind: Identifier, name: name}
}

// Params returns the parameter types of a Function type.
func (t *Type) Params() []*Type { return t.params }

// Returns returns the return types of a Function type.
func (t *Type) Returns() []*Type { return t.returns }

// AddField appends a field to a Struct type in declaration order. Only
// called by Pass B, which holds exclusive access for the duration of
// resolution.
func (t *Type) AddField(name string, ft *Type) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fields = append(t.fields, Field{Name: name, Type: ft})
}

// Fields returns a snapshot of the struct's fields in declaration order.
func (t *Type) Fields() []Field {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// FieldByName resolves a field by name, returning its positional index.
func (t *Type) FieldByName(name string) (idx int, ft *Type, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, f := range t.fields {
		if f.Name == name {
			return i, f.Type, true
		}
	}
	return 0, nil, false
}

// AddMethod appends a method to a Struct type in declaration order.
func (t *Type) AddMethod(name string, sig *Type) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.methods = append(t.methods, Method{Name: name, Sig: sig})
}

// Methods returns a snapshot of the struct's methods in declaration order.
func (t *Type) Methods() []Method {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Method, len(t.methods))
	copy(out, t.methods)
	return out
}

// MethodByName resolves a method's signature by name.
func (t *Type) MethodByName(name string) (sig *Type, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, m := range t.methods {
		if m.Name == name {
			return m.Sig, true
		}
	}
	return nil, false
}

// AddVariant appends a variant to an Enum type in declaration order.
func (t *Type) AddVariant(name string, payload []*Type) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.variants = append(t.variants, Variant{Name: name, Payload: payload})
}

// Variants returns a snapshot of the enum's variants in declaration order.
func (t *Type) Variants() []Variant {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Variant, len(t.variants))
	copy(out, t.variants)
	return out
}

// VariantByName resolves a variant by name, returning its positional index.
func (t *Type) VariantByName(name string) (idx int, payload []*Type, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, v := range t.variants {
		if v.Name == name {
			return i, v.Payload, true
		}
	}
	return 0, nil, false
}

// Equals reports type equality: structural for scalars/arrays/functions,
// by-identity (pointer equality, which for Struct/Enum coincides with
// Spec equality since each declaration owns exactly one handle) otherwise.
func (t *Type) Equals(other *Type) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.kind != other.kind {
		return false
	}
	switch t.kind {
	case Array:
		return t.elem.Equals(other.elem)
	case Function:
		if len(t.params) != len(other.params) || len(t.returns) != len(other.returns) {
			return false
		}
		for i := range t.params {
			if !t.params[i].Equals(other.params[i]) {
				return false
			}
		}
		for i := range t.returns {
			if !t.returns[i].Equals(other.returns[i]) {
				return false
			}
		}
		return true
	case Struct, Enum:
		// Each declaration owns exactly one handle; identity already
		// ruled out above, so distinct handles are distinct types.
		return false
	default:
		// Interned scalars: identity equality already covers this, but
		// fall back to Kind equality for defensiveness.
		return true
	}
}

// String renders a human-readable type name, used in diagnostics and IR
// disassembly.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.kind {
	case Array:
		return "[]" + t.elem.String()
	case Struct, Enum:
		return t.spec.Name
	case Function:
		params := make([]string, len(t.params))
		for i, p := range t.params {
			params[i] = p.String()
		}
		returns := make([]string, len(t.returns))
		for i, r := range t.returns {
			returns[i] = r.String()
		}
		return fmt.Sprintf("func(%s) (%s)", strings.Join(params, ", "), strings.Join(returns, ", "))
	case Identifier:
		return t.name
	default:
		return t.kind.String()
	}
}

// IsNumeric reports whether t is int or number.
func IsNumeric(t *Type) bool {
	return t != nil && (t.kind == Integer || t.kind == Number)
}
