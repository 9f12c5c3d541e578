package driver_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lumalang/luma/internal/driver"
)

func TestRunExecutesEntryPoint(t *testing.T) {
	var out bytes.Buffer
	results, err := driver.Run(`func main(): int { println("hello"); return 5; }`, "test.luma", &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(results) != 1 || int64(results[0]) != 5 {
		t.Fatalf("results = %v, want [5]", results)
	}
	if got := strings.TrimSpace(out.String()); got != "hello" {
		t.Fatalf("output = %q, want %q", got, "hello")
	}
}

func TestRunReportsParseErrors(t *testing.T) {
	var out bytes.Buffer
	_, err := driver.Run(`func main(): int {{{`, "test.luma", &out)
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestRunReportsMissingMain(t *testing.T) {
	var out bytes.Buffer
	_, err := driver.Run(`func helper(): int { return 1; }`, "test.luma", &out)
	if err == nil {
		t.Fatalf("expected an error for a program with no main")
	}
}
