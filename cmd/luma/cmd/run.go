package cmd

import (
	"fmt"
	"os"

	"github.com/lumalang/luma/internal/ast"
	"github.com/lumalang/luma/internal/driver"
	"github.com/lumalang/luma/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr string
	dumpAST  bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a luma file or expression",
	Long: `Compile and run a luma program from a file or an inline expression.

Examples:
  # Run a script file
  luma run script.luma

  # Evaluate inline code
  luma run -e "func main(): int { println(\"hi\"); return 0; }"

  # Dump the parsed AST before running (for debugging)
  luma run --dump-ast script.luma`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST (for debugging)")
}

func runScript(cmd *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input = evalExpr
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

	verbose, _ := cmd.Flags().GetBool("verbose")

	if dumpAST {
		program, errs := parser.ParseProgram(input)
		if len(errs) > 0 {
			for _, e := range errs {
				fmt.Fprintln(os.Stderr, e.Error())
			}
			return fmt.Errorf("parsing failed with %d error(s)", len(errs))
		}
		fmt.Println("AST:")
		dumpProgram(program)
		fmt.Println()
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s\n", filename)
	}

	if _, err := driver.Run(input, filename, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return fmt.Errorf("execution failed")
	}

	return nil
}

// dumpProgram prints a coarse outline of a parsed program: one line per
// package, file and top-level declaration. It is not a full pretty-printer,
// just enough structure to eyeball while debugging the parser.
func dumpProgram(program *ast.Program) {
	for _, pkg := range program.Packages {
		fmt.Printf("package %s\n", pkg.ID)
		for i, file := range pkg.Files {
			fmt.Printf("  file %d (imports: %v)\n", i, file.Imports)
			for _, s := range file.Structs {
				fmt.Printf("    struct %s\n", s.Name)
			}
			for _, e := range file.Enums {
				fmt.Printf("    enum %s\n", e.Name)
			}
			for _, fn := range file.Functions {
				if fn.IsMethod() {
					fmt.Printf("    func %s.%s\n", fn.Receiver, fn.Name)
				} else {
					fmt.Printf("    func %s\n", fn.Name)
				}
			}
		}
	}
}
