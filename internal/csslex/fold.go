package csslex

import (
	"github.com/aledsdavies/edlex/internal/lexutil"
	"github.com/aledsdavies/edlex/pkg/accessor"
)

// Fold is the CSS Fold Accumulator's host entry point (spec.md §4.5, §6
// "fold(...) - CSS only"). It runs as a second pass over bytes the
// Colorize pass already styled, incrementing on '{' and decrementing on
// '}' when each is styled operator, and optionally folding comment blocks.
func Fold(acc accessor.Accessor, start, length int) {
	foldComment := acc.PropertyInt("fold.comment", 0) != 0
	compact := acc.PropertyInt("fold.compact", 1) != 0
	base := acc.PropertyInt("fold.base", 0)

	startLine := acc.LineOf(start)
	endPos := start + length
	if n := acc.Len(); endPos > n {
		endPos = n
	}
	endLine := acc.LineOf(endPos)

	flags := lexutil.FoldFlags{Base: base, FoldComment: foldComment, Compact: compact}
	facc := lexutil.NewFoldAccumulator(flags)
	if startLine > 0 {
		seed, _, _ := accessor.UnpackFoldLevel(acc.FoldLevel(startLine - 1))
		facc.SetLevel(seed)
	}

	text := documentBytes(acc)
	pos := acc.LineStart(startLine)
	prevWasComment := false

	for line := startLine; line <= endLine; line++ {
		lineEnd := acc.LineStart(line + 1)
		if lineEnd > len(text) {
			lineEnd = len(text)
		}
		startLevel := facc.Level()
		facc.StartLine()

		for pos < lineEnd {
			ch := text[pos]
			style := Style(acc.StyleAt(pos))
			if !isWhitespace(ch) && !isNewline(ch) {
				facc.Visible()
			}
			if style == Operator {
				switch ch {
				case '{':
					facc.Inc()
				case '}':
					facc.Dec()
				}
			}
			if foldComment {
				isComment := style == Comment
				if isComment && !prevWasComment {
					facc.Inc()
				} else if !isComment && prevWasComment {
					facc.Dec()
				}
				prevWasComment = isComment
			}
			pos++
		}

		level, header, blank := facc.EndLine(startLevel)
		acc.SetFoldLevel(line, accessor.PackFoldLevel(level, header, blank))
	}
	acc.Flush()
}
