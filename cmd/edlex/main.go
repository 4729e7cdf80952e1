// Command edlex is a small host harness around the CSS and Tcl lexers: a
// CLI that drives the same Colorize/Fold entry points a real editor plugin
// would call, useful for scripting and for manual inspection of a lexer
// pass (spec.md §6 host integration surface).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "edlex",
		Short: "Drive the CSS and Tcl incremental lexers from the command line",
	}
	root.AddCommand(newColorizeCmd())
	root.AddCommand(newFoldCmd())
	root.AddCommand(newWatchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
