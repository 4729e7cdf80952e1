// Package accessor defines the Text Accessor capability set (spec.md §6):
// the abstract interface through which a lexer reads document bytes and
// writes back styles, fold levels, and per-line resume state. The host
// editor framework is the real implementation in production; this package
// also ships MemoryDocument, a reference implementation used by the CLI and
// by every test in internal/csslex and internal/tcllex.
package accessor

// KeywordSet is a word list the host hands to a lexer (CSS property lists,
// pseudo-class/element lists, the Tcl keyword list). Lookups happen on the
// hot path at every identifier boundary.
type KeywordSet interface {
	Contains(text string, caseInsensitive bool) bool
}

// Accessor is the abstract host collaborator a coloring pass reads from and
// writes through. Implementations own the document bytes and the per-line
// style/fold/state metadata; the lexer core never holds its own copy.
type Accessor interface {
	// Len returns the total document length in bytes.
	Len() int
	// ByteAt returns the byte at i, or 0 if i is out of range.
	ByteAt(i int) byte

	// StyleAt returns the style tag currently assigned to byte i.
	StyleAt(i int) int
	// SetStyleRange assigns style to the half-open range [begin, end).
	SetStyleRange(begin, end int, style int)

	// LineOf returns the line number containing byte i.
	LineOf(i int) int
	// LineStart returns the byte offset at which line begins.
	LineStart(line int) int

	// LineState returns the persisted per-line resume state.
	LineState(line int) int
	// SetLineState persists per-line resume state.
	SetLineState(line int, state int)

	// FoldLevel returns the persisted fold level for line.
	FoldLevel(line int) int
	// SetFoldLevel persists the fold level (and flag bits, packed by the
	// caller) for line.
	SetFoldLevel(line int, level int)

	// KeywordList returns the word list registered at index (spec.md §6
	// keyword list descriptors).
	KeywordList(index int) KeywordSet
	// PropertyInt returns a configured int property (dialect/fold toggles),
	// or def if unset.
	PropertyInt(name string, def int) int

	// Flush commits any pending style writes.
	Flush() error
}

// Fold level flag bits, packed just above the level's low 28 bits by
// SetFoldLevel callers (spec.md §3 "Fold level").
const (
	FoldLevelMask = 0x0FFFFFFF
	FoldFlagHeader = 1 << 28
	FoldFlagBlank  = 1 << 29
)

// PackFoldLevel combines a level and its flag bits into the integer stored
// via SetFoldLevel.
func PackFoldLevel(level int, header, blank bool) int {
	v := level & FoldLevelMask
	if header {
		v |= FoldFlagHeader
	}
	if blank {
		v |= FoldFlagBlank
	}
	return v
}

// UnpackFoldLevel splits a stored fold value back into level and flags.
func UnpackFoldLevel(v int) (level int, header, blank bool) {
	level = v & FoldLevelMask
	header = v&FoldFlagHeader != 0
	blank = v&FoldFlagBlank != 0
	return
}
