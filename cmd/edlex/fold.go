package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/edlex/internal/csslex"
	"github.com/aledsdavies/edlex/internal/tcllex"
	"github.com/aledsdavies/edlex/pkg/accessor"
)

func newFoldCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "fold <file>",
		Short: "Colorize a file and print the fold level computed for each line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			lang := detectLanguage(path)
			doc, err := loadDocument(path, lang, cfg)
			if err != nil {
				return err
			}

			switch lang {
			case langTcl:
				// The Tcl lexer accumulates folds inline (spec.md §4.5);
				// there is no separate fold pass to invoke.
				tcllex.Colorize(doc, 0, doc.Len())
			default:
				csslex.Colorize(doc, 0, doc.Len(), cssDialect(cfg))
				csslex.Fold(doc, 0, doc.Len())
			}

			printFolds(cmd, doc)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "dialect/fold configuration document (spec.md §6 properties)")
	return cmd
}

func printFolds(cmd *cobra.Command, doc *accessor.MemoryDocument) {
	out := cmd.OutOrStdout()
	for line := 0; line < doc.LineCount(); line++ {
		level, header, blank := accessor.UnpackFoldLevel(doc.FoldLevel(line))
		fmt.Fprintf(out, "%d\tlevel=%d header=%t blank=%t\n", line, level, header, blank)
	}
}
