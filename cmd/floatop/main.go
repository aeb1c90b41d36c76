// Command floatop is the Pre-float operator console: an interactive
// slider dashboard over the circuit model, plus one-shot evaluation and
// parameter-sweep subcommands.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
