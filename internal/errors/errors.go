// Package errors renders a single compiler error with source context: a
// line/column header, the offending source line, and a caret pointing at
// the exact column. Every phase (parse, check, emit) reports at most one
// error, first error wins, so this package never needs to fold multiple
// diagnostics together.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/lumalang/luma/internal/token"
)

var (
	boldErr  = color.New(color.Bold, color.FgRed)
	boldHead = color.New(color.Bold)
	dim      = color.New(color.Faint)
)

// CompilerError is a single diagnostic with enough context to render a
// caret-annotated source excerpt.
type CompilerError struct {
	Kind    string
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// New builds a CompilerError.
func New(kind string, pos token.Position, source, file, message string) *CompilerError {
	return &CompilerError{Kind: kind, Message: message, Source: source, File: file, Pos: pos}
}

// Error satisfies the error interface with the plain, uncolored form.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

func (e *CompilerError) sourceLine() string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return ""
	}
	return lines[e.Pos.Line-1]
}

// Format renders the error. When useColor is false, no ANSI codes are
// emitted regardless of the terminal.
func (e *CompilerError) Format(useColor bool) string {
	var sb strings.Builder

	header := fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Pos.Line, e.Pos.Column, e.Message)
	if e.File != "" {
		header = fmt.Sprintf("%s: %s", e.File, header)
	}
	if useColor {
		sb.WriteString(boldHead.Sprint(header))
	} else {
		sb.WriteString(header)
	}
	sb.WriteString("\n")

	line := e.sourceLine()
	if line == "" {
		return sb.String()
	}

	gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
	if useColor {
		sb.WriteString(dim.Sprint(gutter))
	} else {
		sb.WriteString(gutter)
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	sb.WriteString(strings.Repeat(" ", len(gutter)+col-1))
	caret := "^"
	if e.Pos.Length > 1 {
		caret = strings.Repeat("^", e.Pos.Length)
	}
	if useColor {
		sb.WriteString(boldErr.Sprint(caret))
	} else {
		sb.WriteString(caret)
	}
	sb.WriteString("\n")

	return sb.String()
}
