package csslex_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/edlex/internal/csslex"
	"github.com/aledsdavies/edlex/pkg/accessor"
	"github.com/aledsdavies/edlex/pkg/keywords"
)

// lineSnapshot is the per-line resume-state/fold shape a Colorize+Fold pass
// produces, used for deep structural comparison with go-cmp rather than a
// byte-by-byte testify assertion.
type lineSnapshot struct {
	State int
	Level int
	Header bool
	Blank  bool
}

func snapshot(doc *accessor.MemoryDocument) []lineSnapshot {
	out := make([]lineSnapshot, doc.LineCount())
	for line := range out {
		level, header, blank := accessor.UnpackFoldLevel(doc.FoldLevel(line))
		out[line] = lineSnapshot{State: doc.LineState(line), Level: level, Header: header, Blank: blank}
	}
	return out
}

func newDoc(t *testing.T, text string) *accessor.MemoryDocument {
	t.Helper()
	return accessor.NewMemoryDocument([]byte(text), keywords.CSSKeywordLists(), nil)
}

var plainCSS = csslex.Dialect{}

// S1: `a.b { color: red; }` - a tag selector, a class selector, a
// declaration name and a plain value.
func TestScenarioS1TagClassDeclaration(t *testing.T) {
	src := "a.b { color: red; }\n"
	doc := newDoc(t, src)
	csslex.Colorize(doc, 0, len(src), plainCSS)

	assert.Equal(t, "tag", csslex.Style(doc.StyleAt(0)).String())
	dotIdx := len("a")
	assert.Equal(t, "operator", csslex.Style(doc.StyleAt(dotIdx)).String())
	classIdx := dotIdx + 1
	assert.Equal(t, "class", csslex.Style(doc.StyleAt(classIdx)).String())

	colorStart := len("a.b { ")
	for i := 0; i < len("color"); i++ {
		assert.Equal(t, "identifier", csslex.Style(doc.StyleAt(colorStart+i)).String())
	}

	redStart := colorStart + len("color: ")
	for i := 0; i < len("red"); i++ {
		assert.Equal(t, "value", csslex.Style(doc.StyleAt(redStart+i)).String())
	}

	require.True(t, doc.Flushed())
}

// S2: `#id[attr="v"]::before { content: ""; }` - id, attribute, pseudo
// element, and an empty string value.
func TestScenarioS2IDAttributePseudoElement(t *testing.T) {
	src := "#id[attr=\"v\"]::before { content: \"\"; }\n"
	doc := newDoc(t, src)
	csslex.Colorize(doc, 0, len(src), plainCSS)

	assert.Equal(t, "id", csslex.Style(doc.StyleAt(len("#"))).String()) // the '#' itself is an operator
	attrStart := len("#id")
	assert.Equal(t, "operator", csslex.Style(doc.StyleAt(attrStart)).String()) // '['
	assert.Equal(t, "attribute", csslex.Style(doc.StyleAt(attrStart+1)).String())

	pseudoStart := len("#id[attr=\"v\"]")
	assert.Equal(t, "operator", csslex.Style(doc.StyleAt(pseudoStart)).String())   // ':'
	assert.Equal(t, "operator", csslex.Style(doc.StyleAt(pseudoStart+1)).String()) // ':'
	assert.Equal(t, "pseudoelement", csslex.Style(doc.StyleAt(pseudoStart+2)).String())
}

// S3: a numeric value with a unit, followed by `!important`.
func TestScenarioS3NumberUnitImportant(t *testing.T) {
	src := "a { width: 10px !important; }\n"
	doc := newDoc(t, src)
	csslex.Colorize(doc, 0, len(src), plainCSS)

	numStart := len("a { width: ")
	assert.Equal(t, "number", csslex.Style(doc.StyleAt(numStart)).String())

	bangStart := numStart + len("10px ")
	for i := 0; i < len("!important"); i++ {
		assert.Equal(t, "important", csslex.Style(doc.StyleAt(bangStart+i)).String())
	}
}

func TestBlockCommentSpansLines(t *testing.T) {
	src := "/* top\n   of file */\na { color: red; }\n"
	doc := newDoc(t, src)
	csslex.Colorize(doc, 0, len(src), plainCSS)

	for i := 0; i < len("/* top"); i++ {
		assert.Equal(t, "comment", csslex.Style(doc.StyleAt(i)).String())
	}
	secondLineStart := len("/* top\n")
	assert.Equal(t, "comment", csslex.Style(doc.StyleAt(secondLineStart)).String())
}

func TestScssLineComment(t *testing.T) {
	scss := csslex.Dialect{Scss: true}
	src := "// a line comment\n$x: 1;\n"
	doc := newDoc(t, src)
	csslex.Colorize(doc, 0, len(src), scss)

	for i := 0; i < len("// a line comment"); i++ {
		assert.Equal(t, "comment", csslex.Style(doc.StyleAt(i)).String())
	}
	dollarStart := len("// a line comment\n")
	assert.Equal(t, "identifier", csslex.Style(doc.StyleAt(dollarStart)).String())
}

func TestDeterminism(t *testing.T) {
	src := "a.b, c#d { margin: 0 auto !important; background: url(x.png); }\n"
	doc1 := newDoc(t, src)
	csslex.Colorize(doc1, 0, len(src), plainCSS)
	doc2 := newDoc(t, src)
	csslex.Colorize(doc2, 0, len(src), plainCSS)
	assert.Equal(t, doc1.Styles(), doc2.Styles())
}

func TestResumeEquivalence(t *testing.T) {
	src := "a {\n  color: red;\n}\nb {\n  color: blue;\n}\n"

	full := newDoc(t, src)
	csslex.Colorize(full, 0, len(src), plainCSS)

	incremental := newDoc(t, src)
	firstCut := len("a {\n  color: red;\n}\n")
	csslex.Colorize(incremental, 0, firstCut, plainCSS)
	csslex.Colorize(incremental, firstCut, len(src)-firstCut, plainCSS)

	assert.Equal(t, full.Styles(), incremental.Styles())

	csslex.Fold(full, 0, len(src))
	csslex.Fold(incremental, 0, len(src))
	if diff := cmp.Diff(snapshot(full), snapshot(incremental)); diff != "" {
		t.Errorf("per-line state/fold snapshot mismatch (-full +incremental):\n%s", diff)
	}
}

func TestFoldBalancedDocumentReturnsToBase(t *testing.T) {
	src := "a {\n  b {\n    color: red;\n  }\n}\n"
	doc := newDoc(t, src)
	csslex.Colorize(doc, 0, len(src), plainCSS)
	csslex.Fold(doc, 0, len(src))

	lastLine := doc.LineCount() - 1
	level, _, _ := accessor.UnpackFoldLevel(doc.FoldLevel(lastLine))
	assert.Equal(t, 0, level)
}

func TestFoldNeverNegative(t *testing.T) {
	src := "}}} a { color: red; }\n"
	doc := newDoc(t, src)
	csslex.Colorize(doc, 0, len(src), plainCSS)
	csslex.Fold(doc, 0, len(src))

	for line := 0; line < doc.LineCount(); line++ {
		level, _, _ := accessor.UnpackFoldLevel(doc.FoldLevel(line))
		assert.GreaterOrEqual(t, level, 0)
	}
}

func TestEveryByteStyled(t *testing.T) {
	src := "a.b:hover::before {\n  content: \"x\" !important;\n}\n"
	doc := newDoc(t, src)
	csslex.Colorize(doc, 0, len(src), plainCSS)
	for i := 0; i < len(src); i++ {
		assert.GreaterOrEqual(t, doc.StyleAt(i), 0)
	}
}

func TestUrlArgumentStaysValueStyled(t *testing.T) {
	src := "a { background: url(http://example.com/x.png?a=1&b=2); }\n"
	doc := newDoc(t, src)
	csslex.Colorize(doc, 0, len(src), plainCSS)

	argStart := len("a { background: url(")
	argEnd := len(src) - len(");\n}\n")
	for i := argStart; i < argEnd; i++ {
		assert.Equal(t, "value", csslex.Style(doc.StyleAt(i)).String(), "byte %d (%q)", i, src[i])
	}
}
