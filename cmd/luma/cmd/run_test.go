package cmd

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. The run command writes straight to os.Stdout
// (as the interpreter it wraps does), so this is the only way to observe
// its output from a test.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	saved := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = saved }()

	fn()

	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured output: %v", err)
	}
	return string(out)
}

// resetRunFlags clears the run command's flag-bound globals. cobra/pflag
// only assigns a flag when it appears on the command line, so reusing the
// package-level rootCmd across tests would otherwise leak state from one
// test's flags into the next.
func resetRunFlags() {
	evalExpr = ""
	dumpAST = false
}

func TestRunCommandEvaluatesInlineExpression(t *testing.T) {
	resetRunFlags()
	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"run", "-e", `func main(): int { println("ok"); return 0; }`})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
	})

	if got := strings.TrimSpace(out); got != "ok" {
		t.Fatalf("output = %q, want %q", got, "ok")
	}
}

func TestRunCommandReportsMissingInput(t *testing.T) {
	resetRunFlags()
	rootCmd.SetArgs([]string{"run"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected an error when no file or -e is given")
	}
}

func TestRunCommandReportsCompileErrors(t *testing.T) {
	resetRunFlags()
	rootCmd.SetArgs([]string{"run", "-e", `func main(): int {{{`})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected an error for malformed source")
	}
}
