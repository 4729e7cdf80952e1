package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aledsdavies/edlex/internal/csslex"
	"github.com/aledsdavies/edlex/pkg/accessor"
	"github.com/aledsdavies/edlex/pkg/config"
	"github.com/aledsdavies/edlex/pkg/keywords"
)

// language is which lexer a path routes to, decided from its extension.
type language int

const (
	langCSS language = iota
	langTcl
)

func detectLanguage(path string) language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tcl":
		return langTcl
	default:
		return langCSS
	}
}

// loadDocument reads path and wires a MemoryDocument with the keyword lists
// and dialect/fold properties the matching lexer needs, applying cfg if one
// was loaded from --config.
func loadDocument(path string, lang language, cfg *config.Config) (*accessor.MemoryDocument, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("edlex: reading %s: %w", path, err)
	}

	var lists map[int]accessor.KeywordSet
	if lang == langTcl {
		lists = keywords.TclKeywordLists()
	} else {
		lists = keywords.CSSKeywordLists()
	}

	var props map[string]int
	if cfg != nil {
		props = cfg.PropertyInts()
	}

	return accessor.NewMemoryDocument(text, lists, props), nil
}

func cssDialect(cfg *config.Config) csslex.Dialect {
	if cfg == nil {
		return csslex.Dialect{}
	}
	return csslex.NewDialect(cfg.Less, cfg.Scss)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("edlex: reading config %s: %w", path, err)
	}
	return config.Parse(raw)
}
