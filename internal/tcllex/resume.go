package tcllex

import "github.com/aledsdavies/edlex/pkg/accessor"

// FindResume implements the Tcl half of spec.md §4.1: walk backward
// line-by-line, skipping lines that end with a backslash-continuation or
// whose trailing style is comment, and skipping lines whose saved mode
// stack top is in-string (multi-line strings are crossed, not resumed
// into). The first line that matches none of those stops the walk.
//
// It also reports the extent of any IO-styled run sitting at the
// original start (stdin/stdout/stderr) so the caller can preserve it
// verbatim instead of re-deriving it.
func FindResume(acc accessor.Accessor, start, length int) (rStart, rLength int, modes ModeStack, ioSkipStart, ioSkipEnd int) {
	end := start + length
	line := acc.LineOf(start)

	resumeLine := 0
	resumeModes := ModeStack{}
	found := false
	for l := line; l >= 0; l-- {
		lineModes := DecodeModeStack(acc.LineState(l))

		if lineModes.Top() == ModeInString {
			continue
		}
		if endsWithContinuation(acc, l) || lastStyleIsComment(acc, l) {
			continue
		}
		resumeLine = l
		resumeModes = lineModes
		found = true
		break
	}
	if !found {
		resumeLine = 0
		resumeModes = ModeStack{}
	}

	rStart = acc.LineStart(resumeLine)
	rLength = end - rStart
	if rLength < 0 {
		rLength = 0
	}
	modes = resumeModes

	if start < acc.Len() && Style(acc.StyleAt(start)).IsIOStyle() {
		style := acc.StyleAt(start)
		i := start
		for i < acc.Len() && acc.StyleAt(i) == style {
			i++
		}
		ioSkipStart, ioSkipEnd = start, i
	}
	return
}

// endsWithContinuation reports whether line l's content ends with an
// unescaped-looking backslash immediately before its line terminator.
func endsWithContinuation(acc accessor.Accessor, l int) bool {
	lineStart := acc.LineStart(l)
	lineEndExclusive := lineEnd(acc, l)
	i := lineEndExclusive - 1
	for i >= lineStart && (acc.ByteAt(i) == '\n' || acc.ByteAt(i) == '\r') {
		i--
	}
	if i < lineStart {
		return false
	}
	return acc.ByteAt(i) == '\\'
}

// lastStyleIsComment reports whether the last styled byte on line l is
// comment - used to keep walking backward across multi-line brace-nested
// comment continuations.
func lastStyleIsComment(acc accessor.Accessor, l int) bool {
	lineStart := acc.LineStart(l)
	lineEndExclusive := lineEnd(acc, l)
	i := lineEndExclusive - 1
	for i >= lineStart && (acc.ByteAt(i) == '\n' || acc.ByteAt(i) == '\r') {
		i--
	}
	if i < lineStart {
		return false
	}
	return Style(acc.StyleAt(i)) == Comment
}

// lineEnd returns the offset one past line l's last byte, newline
// included - callers trim trailing \r\n themselves. LineStart clamps to
// Len() past the last line, so this is safe for the final line too.
func lineEnd(acc accessor.Accessor, l int) int {
	return acc.LineStart(l + 1)
}
