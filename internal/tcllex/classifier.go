package tcllex

import (
	"github.com/aledsdavies/edlex/pkg/accessor"
	"github.com/aledsdavies/edlex/pkg/keywords"
)

// Classify resolves a completed `word`-state token against the Tcl keyword
// list (spec.md §4.3 "Transitions from word"): a leading digit or '.'
// styles it number, membership in the keyword list styles it word, and a
// miss styles it identifier. Lookup is ASCII-case-sensitive, unlike CSS
// property lookups (spec.md §4.4).
func Classify(text string, acc accessor.Accessor) Style {
	if len(text) == 0 {
		return Identifier
	}
	if isDigit(text[0]) || text[0] == '.' {
		return Number
	}
	list := acc.KeywordList(keywords.TclKeywords)
	if list != nil && list.Contains(text, false) {
		return Word
	}
	return Identifier
}
