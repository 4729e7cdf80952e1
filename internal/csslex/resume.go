package csslex

import "github.com/aledsdavies/edlex/pkg/accessor"

// FindResume implements the Resume Finder's CSS policy (spec.md §4.1):
// walk backward from the line containing start to the nearest preceding
// line whose saved state is top-level AND whose fold level equals the
// base. If no safe restart line exists, fall back to position 0 in default
// style (spec.md §7 "Invalid resume point").
func FindResume(acc accessor.Accessor, start, length int) (rStart, rLength int, initialStyle Style, initialMain MainState) {
	base := acc.PropertyInt("fold.base", 0)
	line := acc.LineOf(start)

	for line > 0 {
		main := DecodeLineState(acc.LineState(line))
		level, _, _ := accessor.UnpackFoldLevel(acc.FoldLevel(line))
		if main == StateTopLevel && level == base {
			break
		}
		line--
	}

	newStart := acc.LineStart(line)
	main := DecodeLineState(acc.LineState(line))
	level, _, _ := accessor.UnpackFoldLevel(acc.FoldLevel(line))
	if !(main == StateTopLevel && level == base) {
		// No safe restart line found anywhere in the backward walk.
		newStart = 0
		main = StateTopLevel
	}

	rLength = length + (start - newStart)
	rStart = newStart

	initialMain = main
	initialStyle = Default
	if newStart > 0 {
		atResume := acc.StyleAt(newStart)
		before := acc.StyleAt(newStart - 1)
		if atResume == int(Comment) && before == int(Comment) {
			initialStyle = Comment
		}
	}
	return rStart, rLength, initialStyle, initialMain
}
