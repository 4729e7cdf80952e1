// Package keywords is the Glossary / keyword metadata component (spec.md
// §2, §6): it loads the stable, user-facing word lists both lexers consult
// and exports them as accessor.KeywordSet values under the stable names the
// spec assigns them.
package keywords

import (
	"embed"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aledsdavies/edlex/pkg/accessor"
)

//go:embed data/*.yaml
var dataFS embed.FS

// wordList is a sorted, case-folded word list supporting the
// ASCII-case-insensitive-or-sensitive lookups the Token Classifier needs
// (spec.md §4.4).
type wordList struct {
	lower []string // sorted, lowercased - for case-insensitive lookups
	exact map[string]struct{}
}

func (w *wordList) Contains(text string, caseInsensitive bool) bool {
	if !caseInsensitive {
		_, ok := w.exact[text]
		return ok
	}
	needle := strings.ToLower(text)
	i := sort.SearchStrings(w.lower, needle)
	return i < len(w.lower) && w.lower[i] == needle
}

// words returns the list's members for diagnostics (e.g. fuzzy suggest).
func (w *wordList) words() []string { return w.lower }

type yamlList struct {
	Words []string `yaml:"words"`
}

func loadList(filename string) *wordList {
	raw, err := dataFS.ReadFile("data/" + filename)
	if err != nil {
		panic("edlex/keywords: missing embedded word list " + filename + ": " + err.Error())
	}
	var doc yamlList
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		panic("edlex/keywords: malformed word list " + filename + ": " + err.Error())
	}
	w := &wordList{exact: make(map[string]struct{}, len(doc.Words))}
	for _, word := range doc.Words {
		w.exact[word] = struct{}{}
		w.lower = append(w.lower, strings.ToLower(word))
	}
	sort.Strings(w.lower)
	return w
}

// Stable keyword list indices, shared with accessor.Accessor.KeywordList
// (spec.md §6 "Keyword list descriptors").
const (
	CSS1Properties = iota
	PseudoClasses
	CSS2Properties
	CSS3Properties
	PseudoElements
	BrowserSpecificProperties
	BrowserSpecificPseudoClasses
	BrowserSpecificPseudoElements

	TclKeywords
)

// Descriptor names the index under its stable, user-facing name.
type Descriptor struct {
	Index int
	Name  string
}

// CSSDescriptors lists the eight CSS word lists in the order spec.md §6
// names them.
var CSSDescriptors = []Descriptor{
	{CSS1Properties, "CSS1 Properties"},
	{PseudoClasses, "Pseudo-classes"},
	{CSS2Properties, "CSS2 Properties"},
	{CSS3Properties, "CSS3 Properties"},
	{PseudoElements, "Pseudo-elements"},
	{BrowserSpecificProperties, "Browser-Specific CSS Properties"},
	{BrowserSpecificPseudoClasses, "Browser-Specific Pseudo-classes"},
	{BrowserSpecificPseudoElements, "Browser-Specific Pseudo-elements"},
}

// TclDescriptors lists the single Tcl word list.
var TclDescriptors = []Descriptor{
	{TclKeywords, "Tcl keywords"},
}

var lists = map[int]*wordList{
	CSS1Properties:                loadList("css1_properties.yaml"),
	PseudoClasses:                 loadList("pseudo_classes.yaml"),
	CSS2Properties:                loadList("css2_properties.yaml"),
	CSS3Properties:                loadList("css3_properties.yaml"),
	PseudoElements:                loadList("pseudo_elements.yaml"),
	BrowserSpecificProperties:     loadList("extended_properties.yaml"),
	BrowserSpecificPseudoClasses:  loadList("extended_pseudo_classes.yaml"),
	BrowserSpecificPseudoElements: loadList("extended_pseudo_elements.yaml"),
	TclKeywords:                   loadList("tcl_keywords.yaml"),
}

// List returns the KeywordSet registered at a stable index, ready to hand to
// accessor.Accessor implementations.
func List(index int) accessor.KeywordSet {
	return lists[index]
}

// CSSKeywordLists returns all eight CSS lists keyed by index, the shape
// MemoryDocument.KeywordList expects.
func CSSKeywordLists() map[int]accessor.KeywordSet {
	out := make(map[int]accessor.KeywordSet, len(CSSDescriptors))
	for _, d := range CSSDescriptors {
		out[d.Index] = lists[d.Index]
	}
	return out
}

// TclKeywordLists returns the Tcl keyword list keyed by index.
func TclKeywordLists() map[int]accessor.KeywordSet {
	return map[int]accessor.KeywordSet{TclKeywords: lists[TclKeywords]}
}
