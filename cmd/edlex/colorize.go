package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/edlex/internal/csslex"
	"github.com/aledsdavies/edlex/internal/tcllex"
	"github.com/aledsdavies/edlex/pkg/accessor"
	"github.com/aledsdavies/edlex/pkg/keywords"
)

func newColorizeCmd() *cobra.Command {
	var (
		configPath string
		explain    bool
	)
	cmd := &cobra.Command{
		Use:   "colorize <file>",
		Short: "Run a full Colorize pass over a file and print the resulting style per byte",
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
				tcllex.Colorize(doc, 0, doc.Len())
			default:
				csslex.Colorize(doc, 0, doc.Len(), cssDialect(cfg))
				csslex.Fold(doc, 0, doc.Len())
			}

			printStyles(cmd, doc, lang, explain)
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "dialect/fold configuration document (spec.md §6 properties)")
	cmd.Flags().BoolVar(&explain, "explain", false, "for each unknown-identifier run, suggest the closest known keyword")
	return cmd
}

func printStyles(cmd *cobra.Command, doc *accessor.MemoryDocument, lang language, explain bool) {
	out := cmd.OutOrStdout()
	text := doc.Text()
	n := len(text)
	for i := 0; i < n; {
		style := doc.StyleAt(i)
		j := i
		for j < n && doc.StyleAt(j) == style {
			j++
		}
		name := styleName(lang, style)
		fmt.Fprintf(out, "%d-%d\t%s\t%q\n", i, j, name, text[i:j])
		if explain && lang == langCSS && csslex.Style(style) == csslex.UnknownIdentifier {
			if suggestions := keywords.Suggest(keywords.CSS1Properties, string(text[i:j]), 3); len(suggestions) > 0 {
				fmt.Fprintf(out, "\tdid you mean: %v\n", suggestions)
			}
		}
		i = j
	}
}

func styleName(lang language, style int) string {
	if lang == langTcl {
		return tcllex.Style(style).String()
	}
	return csslex.Style(style).String()
}
