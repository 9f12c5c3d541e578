package cmd

import (
	"strings"
	"testing"
)

func TestDisasmCommandPrintsModule(t *testing.T) {
	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"disasm", "-e", `func main(): int { return 1 + 2; }`})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}
	})

	if !strings.Contains(out, "_Lmain_main") {
		t.Fatalf("output = %q, want it to mention the entry symbol", out)
	}
	if !strings.Contains(out, "block 0:") {
		t.Fatalf("output = %q, want at least one disassembled block", out)
	}
}

func TestDisasmCommandReportsMissingInput(t *testing.T) {
	disasmEvalExpr = ""
	rootCmd.SetArgs([]string{"disasm"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected an error when no file or -e is given")
	}
}
