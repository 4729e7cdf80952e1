package tcllex

import (
	"fmt"

	"github.com/aledsdavies/edlex/internal/lexutil"
	"github.com/aledsdavies/edlex/pkg/accessor"
)

// Lexer is the Tcl Lexer State Machine (spec.md §4.3): a byte-by-byte main
// loop driven by a packed ModeStack and a handful of non-persisted
// auxiliary counters, with fold accumulation interleaved (spec.md §4.5)
// rather than run as a second pass.
type Lexer struct {
	acc accessor.Accessor
	cfg lexutil.Config
	tel lexutil.Telemetry

	text []byte
	pos  int
	end  int

	modes ModeStack
	aux   auxFlags

	ioSkipStart int
	ioSkipEnd   int

	lineNo        int
	lineStart     int
	lineStartLevel int

	runStart int
	runStyle Style

	lastVisibleStyle Style
	sawVisibleByte   bool

	word *lexutil.ScratchBuffer // bounded Tcl word text (40 bytes)

	fold *lexutil.FoldAccumulator
}

// New builds a Tcl lexer resuming with the given mode stack.
func New(acc accessor.Accessor, modes ModeStack, opts ...lexutil.Option) *Lexer {
	cfg := lexutil.Apply(opts...)
	return &Lexer{
		acc:      acc,
		cfg:      cfg,
		modes:    modes,
		aux:      auxFlags{cmdStart: true, inStrBraceCnt: -1},
		word:     lexutil.NewScratchBuffer(40),
		runStyle: Default,
	}
}

// Colorize is the Tcl host entry point (spec.md §6): folds are computed
// inline, so there is no separate Fold export for this lexer.
func Colorize(acc accessor.Accessor, start, length int, opts ...lexutil.Option) {
	rStart, rLength, modes, ioSkipStart, ioSkipEnd := FindResume(acc, start, length)
	l := New(acc, modes, opts...)
	l.ioSkipStart, l.ioSkipEnd = ioSkipStart, ioSkipEnd
	l.runFrom(rStart, rLength)
}

func (l *Lexer) runFrom(start, length int) {
	l.text = documentBytes(l.acc)
	l.pos = start
	l.end = start + length
	if l.end > len(l.text) {
		l.end = len(l.text)
	}
	l.lineNo = l.acc.LineOf(start)
	l.lineStart = l.acc.LineStart(l.lineNo)
	l.runStart = l.pos
	l.runStyle = Default

	foldComment := l.acc.PropertyInt("fold.comment", 0) != 0
	compact := l.acc.PropertyInt("fold.compact", 1) != 0
	atElse := l.acc.PropertyInt("fold.at.else", 1) != 0
	base := l.acc.PropertyInt("fold.base", 0)
	l.fold = lexutil.NewFoldAccumulator(lexutil.FoldFlags{
		Base: base, FoldComment: foldComment, Compact: compact, AtElse: atElse,
	})
	if l.lineNo > 0 {
		seed, _, _ := accessor.UnpackFoldLevel(l.acc.FoldLevel(l.lineNo - 1))
		l.fold.SetLevel(seed)
	}
	l.fold.StartLine()
	l.lineStartLevel = l.fold.Level()

	l.saveLineState()

	for l.pos < l.end {
		// IO styles are injected by an external collaborator and must be
		// preserved verbatim through the run the Resume Finder identified
		// (spec.md §4.1 Tcl policy) - skip over it rather than re-deriving it.
		if l.pos == l.ioSkipStart && l.ioSkipEnd > l.ioSkipStart {
			l.flushRun()
			end := l.ioSkipEnd
			if end > l.end {
				end = l.end
			}
			l.pos = end
			l.runStart = l.pos
			continue
		}
		ch := l.text[l.pos]
		if l.modes.Top() != ModeInString && ch == '\n' {
			l.consumeNewline()
			continue
		}
		if l.modes.Top() != ModeInString && isWhitespace(ch) {
			l.emitByte(Default)
			continue
		}
		if !isWhitespace(ch) {
			l.sawVisibleByte = true
			l.fold.Visible()
		}
		if l.modes.Top() == ModeInString {
			l.stepString()
		} else {
			l.dispatchDefault()
		}
	}
	l.flushRun()
	l.closeLine()
	l.acc.Flush()
	l.tel.Record(&l.cfg, l.end-start, 0, l.lineNo+1)
}

func (l *Lexer) saveLineState() {
	l.acc.SetLineState(l.lineNo, l.modes.Encode())
}

func (l *Lexer) closeLine() {
	level, header, blank := l.fold.EndLine(l.lineStartLevel)
	l.acc.SetFoldLevel(l.lineNo, accessor.PackFoldLevel(level, header, blank))
}

func (l *Lexer) openLine() {
	l.lineNo++
	l.lineStart = l.pos
	l.sawVisibleByte = false
	l.saveLineState()
	l.fold.StartLine()
	l.lineStartLevel = l.fold.Level()
}

// advanceLine closes the current fold line and opens the next without
// disturbing an in-flight token (comment continuation, string spanning a
// raw newline) - the counterpart of csslex's advanceLine.
func (l *Lexer) advanceLine() {
	l.closeLine()
	l.openLine()
}

// consumeNewline is the top-level "no token owns this byte" case: a bare
// '\n' outside any string always closes the line and ends comments/words.
// A preceding '\r' was already consumed as plain whitespace by the main
// loop, so it merges into that run rather than getting its own segment -
// the reference lexer never reaches a live end-of-line style either.
func (l *Lexer) consumeNewline() {
	begin := l.pos
	l.pos++
	l.emitRange(begin, l.pos, Default)
	l.flushRun()
	l.advanceLine()
	l.aux.cmdStart = true
}

func (l *Lexer) emitByte(style Style) {
	l.emitRange(l.pos, l.pos+1, style)
	l.pos++
}

func (l *Lexer) emitRange(begin, end int, style Style) {
	if style != l.runStyle {
		l.flushRun()
		l.runStart = begin
		l.runStyle = style
	}
	if end > begin {
		l.lastVisibleStyle = style
	}
}

func (l *Lexer) flushRun() {
	if l.pos > l.runStart {
		l.acc.SetStyleRange(l.runStart, l.pos, int(l.runStyle))
	}
	l.runStart = l.pos
}

func (l *Lexer) emitToken(begin int, style Style) {
	l.emitRange(begin, l.pos, style)
	l.flushRun()
}

func (l *Lexer) peek(offset int) byte {
	i := l.pos + offset
	if i < 0 || i >= len(l.text) {
		return 0
	}
	return l.text[i]
}

func documentBytes(acc accessor.Accessor) []byte {
	type byter interface{ Text() []byte }
	if b, ok := acc.(byter); ok {
		return b.Text()
	}
	n := acc.Len()
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		buf[i] = acc.ByteAt(i)
	}
	return buf
}

func (l *Lexer) String() string {
	return fmt.Sprintf("tcllex.Lexer{depth=%d, pos=%d}", l.modes.Depth(), l.pos)
}
