package errors

import (
	"strings"
	"testing"

	"github.com/lumalang/luma/internal/token"
)

func TestFormatPlainHasNoEscapeCodes(t *testing.T) {
	e := New("TypeMismatch", token.Position{Line: 2, Column: 5}, "let x = 1;\nlet y = x + true;\n", "main.luma", "cannot add int and bool")
	out := e.Format(false)

	if strings.Contains(out, "\x1b[") {
		t.Fatalf("plain Format should not contain ANSI escapes, got %q", out)
	}
	if !strings.Contains(out, "cannot add int and bool") {
		t.Fatalf("Format should contain the message, got %q", out)
	}
	if !strings.Contains(out, "let y = x + true;") {
		t.Fatalf("Format should contain the offending source line, got %q", out)
	}
}

func TestFormatCaretColumn(t *testing.T) {
	e := New("ExpectedToken", token.Position{Line: 1, Column: 9, Length: 1}, "let x = ;\n", "", "expected an expression, got ;")
	out := e.Format(false)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header/source/caret lines, got %d: %q", len(lines), out)
	}
	caretLine := lines[2]
	if !strings.HasSuffix(strings.TrimRight(caretLine, " "), "^") {
		t.Fatalf("caret line should end in '^', got %q", caretLine)
	}
}

func TestFormatMissingSourceSkipsCaret(t *testing.T) {
	e := New("InternalError", token.Position{Line: 1, Column: 1}, "", "", "no source available")
	out := e.Format(false)
	if strings.Contains(out, "^") {
		t.Fatalf("Format with empty source should not render a caret, got %q", out)
	}
}
