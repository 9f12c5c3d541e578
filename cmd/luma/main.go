// Command luma compiles and runs luma programs.
package main

import (
	"os"

	"github.com/lumalang/luma/cmd/luma/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
