package ast

import (
	"github.com/lumalang/luma/internal/token"
	"github.com/lumalang/luma/internal/types"
)

// Param is one parameter of a function or method signature.
type Param struct {
	Name       string
	Annotation *TypeExpr
}

// FuncDecl is a free function (`func f(...)`) or, when Receiver is set, a
// method (`func S.m(...)`). SymbolName is filled in by the checker with the
// mangled symbol the checker derives for it. ParamTypes/ReturnTypes are
// filled in alongside it with the resolved canonical types (excluding the
// implicit `self` for a method), so internal/emit never needs to re-resolve
// a TypeExpr.
type FuncDecl struct {
	Pos         token.Position
	Name        string
	Receiver    string // struct name for a method; "" for a free function
	Params      []Param
	ReturnType  *TypeExpr // nil when the function returns nothing
	Body        *Block
	SymbolName  string
	ParamTypes  []*types.Type
	ReturnTypes []*types.Type
}

func (f *FuncDecl) Position() token.Position { return f.Pos }

// IsMethod reports whether this declaration is a method on Receiver.
func (f *FuncDecl) IsMethod() bool { return f.Receiver != "" }

// FieldDecl is one `name: T` field of a struct.
type FieldDecl struct {
	Pos        token.Position
	Name       string
	Annotation *TypeExpr
}

// StructDecl declares a struct's field layout; its methods are separate
// top-level FuncDecl nodes with Receiver set to this struct's Name.
type StructDecl struct {
	Pos    token.Position
	Name   string
	Fields []FieldDecl
}

func (s *StructDecl) Position() token.Position { return s.Pos }

// EnumVariant is one `Name(payload...)` case of an enum.
type EnumVariant struct {
	Pos     token.Position
	Name    string
	Payload []*TypeExpr
}

// EnumDecl declares an enum's variant list.
type EnumDecl struct {
	Pos      token.Position
	Name     string
	Variants []EnumVariant
}

func (e *EnumDecl) Position() token.Position { return e.Pos }

// File is one parsed source file: its own declarations plus the packages it
// imports. "builtins" is appended implicitly by NewFile.
type File struct {
	Imports   []string
	Functions []*FuncDecl
	Structs   []*StructDecl
	Enums     []*EnumDecl
}

// NewFile creates a File with the implicit "builtins" import appended.
func NewFile(imports []string) *File {
	f := &File{Imports: append(append([]string{}, imports...), "builtins")}
	return f
}

// Package is a named, ordered sequence of files.
type Package struct {
	ID    string
	Files []*File
}

// Program is an ordered sequence of packages; it is the root of the tree the
// semantic analyzer consumes.
type Program struct {
	Packages []*Package
}
