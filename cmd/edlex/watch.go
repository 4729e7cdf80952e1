package main

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/aledsdavies/edlex/internal/csslex"
	"github.com/aledsdavies/edlex/internal/tcllex"
	"github.com/aledsdavies/edlex/pkg/accessor"
	"github.com/aledsdavies/edlex/pkg/config"
)

func newWatchCmd() *cobra.Command {
	var (
		configPath string
		cachePath  string
	)
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-colorize a file on every write, recording each line's fingerprint, state and fold level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cachePath == "" {
				cachePath = path + ".edlex-cache"
			}

			w, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("edlex: starting watcher: %w", err)
			}
			defer w.Close()
			if err := w.Add(path); err != nil {
				return fmt.Errorf("edlex: watching %s: %w", path, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "watching %s (ctrl-c to stop)\n", path)
			if err := recolorAndCache(cmd, path, cfg, cachePath); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}

			for event := range w.Events {
				if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := recolorAndCache(cmd, path, cfg, cachePath); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "dialect/fold configuration document (spec.md §6 properties)")
	cmd.Flags().StringVar(&cachePath, "cache", "", "session cache path (default <file>.edlex-cache)")
	return cmd
}

// recolorAndCache runs a full Colorize+Fold pass over the whole file, then
// persists each line's resulting state/fold level keyed by content
// fingerprint (accessor.SessionCache). The cache is only written here: every
// tick re-lexes the whole file regardless of what the cache holds.
func recolorAndCache(cmd *cobra.Command, path string, cfg *config.Config, cachePath string) error {
	lang := detectLanguage(path)
	doc, err := loadDocument(path, lang, cfg)
	if err != nil {
		return err
	}

	cache, err := accessor.LoadSessionCache(cachePath)
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

	text := doc.Text()
	for line := 0; line < doc.LineCount(); line++ {
		start := doc.LineStart(line)
		end := doc.LineEnd(line)
		if end > len(text) {
			end = len(text)
		}
		fp := accessor.Fingerprint(text[start:end])
		cache.Put(fp, doc.LineState(line), doc.FoldLevel(line))
	}
	if err := cache.Save(cachePath); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "recolored %s (%d lines)\n", path, doc.LineCount())
	return nil
}
