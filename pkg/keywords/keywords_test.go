package keywords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aledsdavies/edlex/pkg/keywords"
)

func TestCSS1PropertiesContains(t *testing.T) {
	list := keywords.List(keywords.CSS1Properties)
	require := list != nil
	assert.True(t, require)
	assert.True(t, list.Contains("color", false))
	assert.False(t, list.Contains("not-a-real-property", false))
}

func TestContainsCaseInsensitive(t *testing.T) {
	list := keywords.List(keywords.PseudoClasses)
	assert.True(t, list.Contains("hover", false))
	assert.False(t, list.Contains("HOVER", false))
	assert.True(t, list.Contains("HOVER", true))
}

func TestTclKeywordsCoreSet(t *testing.T) {
	list := keywords.List(keywords.TclKeywords)
	for _, word := range []string{"proc", "set", "if", "return", "puts", "list", "expr"} {
		assert.True(t, list.Contains(word, false), "expected %q in Tcl keyword list", word)
	}
}

func TestCSSKeywordListsCoversAllDescriptors(t *testing.T) {
	got := keywords.CSSKeywordLists()
	for _, d := range keywords.CSSDescriptors {
		_, ok := got[d.Index]
		assert.True(t, ok, "missing descriptor %s", d.Name)
	}
	assert.Len(t, got, len(keywords.CSSDescriptors))
}

func TestTclKeywordListsSingleDescriptor(t *testing.T) {
	got := keywords.TclKeywordLists()
	assert.Len(t, got, 1)
	_, ok := got[keywords.TclKeywords]
	assert.True(t, ok)
}

func TestSuggestRanksCloseMatches(t *testing.T) {
	out := keywords.Suggest(keywords.CSS1Properties, "colr", 3)
	assert.Contains(t, out, "color")
}

func TestSuggestUnknownIndexReturnsNil(t *testing.T) {
	out := keywords.Suggest(9999, "color", 3)
	assert.Nil(t, out)
}
