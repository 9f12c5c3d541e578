package cmd

import (
	"fmt"
	"os"

	"github.com/lumalang/luma/internal/driver"
	"github.com/lumalang/luma/internal/ir"
	"github.com/spf13/cobra"
)

var disasmEvalExpr string

var disasmCmd = &cobra.Command{
	Use:   "disasm [file]",
	Short: "Compile a luma file and print its disassembled IR",
	Long: `Compile a luma program through the parser, semantic analyzer and IR
emitter, then print the resulting module in disassembled form, without
translating it to native code or running it.

Examples:
  luma disasm script.luma
  luma disasm -e "func main(): int { return 1 + 2; }"`,
	Args: cobra.MaximumNArgs(1),
	RunE: disasmScript,
}

func init() {
	rootCmd.AddCommand(disasmCmd)

	disasmCmd.Flags().StringVarP(&disasmEvalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

func disasmScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case disasmEvalExpr != "":
		input = disasmEvalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	result, err := driver.Compile(input, filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("compilation failed")
	}

	fmt.Print(ir.Disassemble(result.Module))
	return nil
}
