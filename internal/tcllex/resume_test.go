package tcllex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aledsdavies/edlex/internal/tcllex"
)

// Re-coloring only the tail of a document (simulating an incremental edit)
// must reproduce the same styles a from-scratch pass over the whole
// document would produce - this is the resumption-equivalence invariant
// (spec.md §8.2).
func TestResumeEquivalence(t *testing.T) {
	src := "proc add {a b} {\n  return [expr {$a + $b}]\n}\nset total [add 1 2]\nputs $total\n"

	full := newDoc(t, src)
	tcllex.Colorize(full, 0, len(src))

	incremental := newDoc(t, src)
	// First color everything up through the end of the proc body, as if
	// only that much had been typed so far...
	firstCut := len("proc add {a b} {\n  return [expr {$a + $b}]\n}\n")
	tcllex.Colorize(incremental, 0, firstCut)
	// ...then color the rest as a follow-up edit.
	tcllex.Colorize(incremental, firstCut, len(src)-firstCut)

	assert.Equal(t, full.Styles(), incremental.Styles())
}

func TestResumeCrossesMultilineString(t *testing.T) {
	src := "set a \"one\ntwo\nthree\"\nset b 1\n"
	full := newDoc(t, src)
	tcllex.Colorize(full, 0, len(src))

	// Ask to resume at the line containing "three\"" - the resume finder
	// must walk back across the whole multi-line string to the line
	// where it actually opened.
	threeLine := len("set a \"one\ntwo\n")
	rStart, _, modes, _, _ := tcllex.FindResume(full, threeLine, len(src)-threeLine)
	assert.LessOrEqual(t, rStart, len("set a \""))
	assert.Equal(t, 0, modes.Depth())
}

func TestResumeFailureModeRestartsAtZero(t *testing.T) {
	doc := newDoc(t, "")
	rStart, rLength, modes, ioStart, ioEnd := tcllex.FindResume(doc, 0, 0)
	assert.Equal(t, 0, rStart)
	assert.Equal(t, 0, rLength)
	assert.Equal(t, 0, modes.Depth())
	assert.Equal(t, 0, ioStart)
	assert.Equal(t, 0, ioEnd)
}
