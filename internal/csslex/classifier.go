package csslex

import (
	"strings"

	"github.com/aledsdavies/edlex/pkg/accessor"
	"github.com/aledsdavies/edlex/pkg/keywords"
)

// Lists bundles the eight keyword lists a CSS coloring pass consults
// (spec.md §6 "Keyword list descriptors"), resolved once per pass from the
// Accessor.
type Lists struct {
	CSS1Properties     accessor.KeywordSet
	CSS2Properties     accessor.KeywordSet
	CSS3Properties     accessor.KeywordSet
	ExtendedProperties  accessor.KeywordSet
	PseudoClasses       accessor.KeywordSet
	PseudoElements      accessor.KeywordSet
	ExtendedPseudoClass accessor.KeywordSet
	ExtendedPseudoElem  accessor.KeywordSet
}

// ResolveLists pulls the eight lists off an Accessor using the stable
// indices defined in pkg/keywords.
func ResolveLists(acc accessor.Accessor) Lists {
	return Lists{
		CSS1Properties:      acc.KeywordList(keywords.CSS1Properties),
		CSS2Properties:      acc.KeywordList(keywords.CSS2Properties),
		CSS3Properties:      acc.KeywordList(keywords.CSS3Properties),
		ExtendedProperties:  acc.KeywordList(keywords.BrowserSpecificProperties),
		PseudoClasses:       acc.KeywordList(keywords.PseudoClasses),
		PseudoElements:      acc.KeywordList(keywords.PseudoElements),
		ExtendedPseudoClass: acc.KeywordList(keywords.BrowserSpecificPseudoClasses),
		ExtendedPseudoElem:  acc.KeywordList(keywords.BrowserSpecificPseudoElements),
	}
}

// ClassifyIdentifier resolves a completed identifier token against the
// property lists in priority order (spec.md §4.2 "Identifier resolution").
// allowDefaulting controls whether a miss becomes UnknownIdentifier (the
// property-name position) or is left untouched (the tag/selector position,
// signalled by returning fallback unchanged).
func ClassifyIdentifier(text string, lists Lists, allowDefaulting bool, fallback Style) Style {
	lower := strings.ToLower(text)
	switch {
	case lists.CSS1Properties != nil && lists.CSS1Properties.Contains(lower, false):
		return Identifier
	case lists.CSS2Properties != nil && lists.CSS2Properties.Contains(lower, false):
		return Identifier2
	case lists.CSS3Properties != nil && lists.CSS3Properties.Contains(lower, false):
		return Identifier3
	case lists.ExtendedProperties != nil && lists.ExtendedProperties.Contains(lower, false):
		return ExtendedIdentifier
	}
	if allowDefaulting {
		return UnknownIdentifier
	}
	return fallback
}

// ClassifyPseudo resolves a `:`/`::` token's following word against the
// pseudo-class/pseudo-element lists (spec.md §4.2 "Pseudo-class/element
// resolution"). isElement (the `::` form) selects the pseudo-element lists,
// with pseudoelement as the fallback. Otherwise the pseudo-class lists are
// tried first and then the pseudo-element lists, so a known element name
// written with a single colon still resolves as one; a miss in all four is
// unknown-pseudoclass.
func ClassifyPseudo(text string, lists Lists, isElement bool) Style {
	lower := strings.ToLower(text)
	if isElement {
		if lists.PseudoElements != nil && lists.PseudoElements.Contains(lower, false) {
			return PseudoElement
		}
		if lists.ExtendedPseudoElem != nil && lists.ExtendedPseudoElem.Contains(lower, false) {
			return ExtendedPseudoElement
		}
		return PseudoElement
	}
	if lists.PseudoClasses != nil && lists.PseudoClasses.Contains(lower, false) {
		return PseudoClass
	}
	if lists.ExtendedPseudoClass != nil && lists.ExtendedPseudoClass.Contains(lower, false) {
		return ExtendedPseudoClass
	}
	if lists.PseudoElements != nil && lists.PseudoElements.Contains(lower, false) {
		return PseudoElement
	}
	if lists.ExtendedPseudoElem != nil && lists.ExtendedPseudoElem.Contains(lower, false) {
		return ExtendedPseudoElement
	}
	return UnknownPseudoClass
}

// urlArgPrefixes are the special identifier sequences that open a
// URL-argument sub-mode (spec.md §4.2).
var urlArgPrefixes = map[string]bool{
	"url":        true,
	"url-prefix": true,
	"domain":     true,
	"regexp":     true,
}

// isURLArgWord reports whether a lowercased value token names one of the
// URL-argument-opening identifiers.
func isURLArgWord(lower string) bool {
	return urlArgPrefixes[lower]
}
