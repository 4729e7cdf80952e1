package tcllex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aledsdavies/edlex/internal/tcllex"
	"github.com/aledsdavies/edlex/pkg/accessor"
	"github.com/aledsdavies/edlex/pkg/keywords"
)

func newDoc(t *testing.T, text string) *accessor.MemoryDocument {
	t.Helper()
	return accessor.NewMemoryDocument([]byte(text), keywords.TclKeywordLists(), nil)
}

func styleNames(doc *accessor.MemoryDocument, begin, end int) []string {
	out := make([]string, 0, end-begin)
	for i := begin; i < end; i++ {
		out = append(out, tcllex.Style(doc.StyleAt(i)).String())
	}
	return out
}

// S4: proc foo {a b} { puts "hi" }
func TestScenarioS4ProcDefinition(t *testing.T) {
	src := "proc foo {a b} { puts \"hi\" }\n"
	doc := newDoc(t, src)
	tcllex.Colorize(doc, 0, len(src))

	procStart := 0
	assert.Equal(t, "word", tcllex.Style(doc.StyleAt(procStart)).String(), "proc is a keyword")

	fooStart := len("proc ")
	assert.Equal(t, "identifier", tcllex.Style(doc.StyleAt(fooStart)).String())

	putsStart := len("proc foo {a b} { ")
	for i := 0; i < len("puts"); i++ {
		assert.Equal(t, "word", tcllex.Style(doc.StyleAt(putsStart+i)).String())
	}

	hiQuoteStart := putsStart + len("puts ")
	assert.Equal(t, "string", tcllex.Style(doc.StyleAt(hiQuoteStart)).String())

	require.True(t, doc.Flushed())
}

// S5: { foo " } bar - the quote is a literal because the brace closes
// later on the same line.
func TestScenarioS5BraceEmbeddedQuote(t *testing.T) {
	src := "{ foo \" } bar\n"
	doc := newDoc(t, src)
	tcllex.Colorize(doc, 0, len(src))

	quoteIdx := len("{ foo ")
	assert.Equal(t, "literal", tcllex.Style(doc.StyleAt(quoteIdx)).String())
}

// S6: $a$b ${c(d)}(e) - two bare variables, a braced variable, then
// literal parens.
func TestScenarioS6Variables(t *testing.T) {
	src := "$a$b ${c(d)}(e)\n"
	doc := newDoc(t, src)
	tcllex.Colorize(doc, 0, len(src))

	assert.Equal(t, "variable", tcllex.Style(doc.StyleAt(0)).String()) // $a
	assert.Equal(t, "variable", tcllex.Style(doc.StyleAt(2)).String()) // $b

	bracedStart := len("$a$b ")
	assert.Equal(t, "variable", tcllex.Style(doc.StyleAt(bracedStart)).String())

	parenStart := bracedStart + len("${c(d)}")
	assert.Equal(t, "operator", tcllex.Style(doc.StyleAt(parenStart)).String()) // '('
	assert.Equal(t, "identifier", tcllex.Style(doc.StyleAt(parenStart+1)).String())
	assert.Equal(t, "operator", tcllex.Style(doc.StyleAt(parenStart+2)).String()) // ')'
}

func TestCommentToEndOfLine(t *testing.T) {
	src := "# a comment {\nset x 1\n"
	doc := newDoc(t, src)
	tcllex.Colorize(doc, 0, len(src))

	for i := 0; i < len("# a comment {"); i++ {
		assert.Equal(t, "comment", tcllex.Style(doc.StyleAt(i)).String())
	}
	setStart := len("# a comment {\n")
	for i := 0; i < len("set"); i++ {
		assert.Equal(t, "word", tcllex.Style(doc.StyleAt(setStart+i)).String())
	}
}

func TestCommandSubstitutionInsideString(t *testing.T) {
	src := "set y \"pre [expr {1+1}] post\"\n"
	doc := newDoc(t, src)
	tcllex.Colorize(doc, 0, len(src))

	exprStart := len("set y \"pre [")
	for i := 0; i < len("expr"); i++ {
		assert.Equal(t, "word", tcllex.Style(doc.StyleAt(exprStart+i)).String())
	}
	postStart := exprStart + len("expr {1+1}] ")
	for i := 0; i < len("post"); i++ {
		assert.Equal(t, "string", tcllex.Style(doc.StyleAt(postStart+i)).String())
	}
}

func TestMultilineStringIsCrossed(t *testing.T) {
	src := "set z \"line one\nline two\"\nset w 2\n"
	doc := newDoc(t, src)
	tcllex.Colorize(doc, 0, len(src))

	lineTwoStart := len("set z \"line one\n")
	assert.Equal(t, "string", tcllex.Style(doc.StyleAt(lineTwoStart)).String())

	// mode stack for the line starting "line two\"" must show in-string.
	modes := tcllex.DecodeModeStack(doc.LineState(1))
	assert.Equal(t, tcllex.ModeInString, modes.Top())
}

func TestDeterminism(t *testing.T) {
	src := "proc add {a b} {\n  return [expr {$a + $b}]\n}\nputs [add 1 2]\n"
	doc1 := newDoc(t, src)
	tcllex.Colorize(doc1, 0, len(src))
	doc2 := newDoc(t, src)
	tcllex.Colorize(doc2, 0, len(src))
	assert.Equal(t, doc1.Styles(), doc2.Styles())
}

func TestFoldLevelNeverNegative(t *testing.T) {
	src := "}}}]]]\nset x 1\n{{{[[[\n"
	doc := newDoc(t, src)
	tcllex.Colorize(doc, 0, len(src))
	for line := 0; line < 3; line++ {
		level, _, _ := accessor.UnpackFoldLevel(doc.FoldLevel(line))
		assert.GreaterOrEqual(t, level, 0)
	}
}

func TestModeStackBalancedDocumentEndsEmpty(t *testing.T) {
	src := "proc f {} {\n  if {1} {\n    puts [list a b]\n  }\n}\n"
	doc := newDoc(t, src)
	tcllex.Colorize(doc, 0, len(src))
	modes := tcllex.DecodeModeStack(doc.LineState(doc.LineCount() - 1))
	assert.Equal(t, 0, modes.Depth())
}

func TestEveryByteStyled(t *testing.T) {
	src := "proc f {a} {\n\tputs $a ;# trailing comment\n}\n"
	doc := newDoc(t, src)
	tcllex.Colorize(doc, 0, len(src))
	for i := 0; i < len(src); i++ {
		assert.GreaterOrEqual(t, doc.StyleAt(i), 0)
	}
}
