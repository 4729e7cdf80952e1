package csslex

import (
	"fmt"

	"github.com/aledsdavies/edlex/internal/lexutil"
	"github.com/aledsdavies/edlex/pkg/accessor"
)

// Lexer is the CSS Lexer State Machine (spec.md §4.2): a byte-by-byte main
// loop that advances position, transitions MainState, and emits styled
// segments through the Accessor.
type Lexer struct {
	acc     accessor.Accessor
	dialect Dialect
	lists   Lists
	cfg     lexutil.Config
	tel     lexutil.Telemetry

	text []byte
	pos  int
	end  int

	main       MainState
	nestedDecl int // nested_declaration_count (spec.md §9 open question: subtract-to-zero, never re-incremented beyond Table 1's `{` rows)

	stringAux  StringAux
	afterParen bool // true right after '(' or ',' and only whitespace since - gates the Less negative-number rule

	pendingURLArg bool // a value token just matched {url,url-prefix,domain,regexp}
	inURLArg      bool // inside a url(...) argument - stay styled value until ')'

	inTopLevelDirective bool // true while inside @import/@charset/@namespace before ';'

	lineNo    int
	lineStart int

	runStart int
	runStyle Style

	ident *lexutil.ScratchBuffer // bounded identifier/tag/value text (100 bytes)
	small *lexutil.ScratchBuffer // bounded value-prefix scratch, e.g. !important word (12 bytes)
}

// New builds a CSS lexer ready to color [start, start+length) of acc's
// document, beginning in initialMain with the given dialect flags.
func New(acc accessor.Accessor, dialect Dialect, initialMain MainState, opts ...lexutil.Option) *Lexer {
	cfg := lexutil.Apply(opts...)
	return &Lexer{
		acc:      acc,
		dialect:  dialect,
		lists:    ResolveLists(acc),
		cfg:      cfg,
		main:     initialMain,
		ident:    lexutil.NewScratchBuffer(100),
		small:    lexutil.NewScratchBuffer(12),
		runStyle: Default,
	}
}

// Colorize runs the full resume + lex pass and is the host entry point named
// in spec.md §6 ("colorize(start, length, initial_style, keyword_lists,
// accessor)").
func Colorize(acc accessor.Accessor, start, length int, dialect Dialect, opts ...lexutil.Option) {
	rStart, rLength, initialStyle, initialMain := FindResume(acc, start, length)
	l := New(acc, dialect, initialMain, opts...)
	_ = initialStyle // initial_style' feeds the comment sub-state below
	l.runFrom(rStart, rLength, initialStyle)
}

func (l *Lexer) runFrom(start, length int, initialStyle Style) {
	l.text = documentBytes(l.acc)
	l.pos = start
	l.end = start + length
	if l.end > len(l.text) {
		l.end = len(l.text)
	}
	l.lineNo = l.acc.LineOf(start)
	l.lineStart = l.acc.LineStart(l.lineNo)
	l.runStart = l.pos
	l.runStyle = initialStyle
	l.saveLineState() // the state this pass begins the line with

	if initialStyle == Comment {
		l.scanCommentBody(CommentBlock, true)
	}

	for l.pos < l.end {
		ch := l.text[l.pos]
		switch {
		case ch == '\n':
			l.consumeNewline()
		case isWhitespace(ch):
			l.emitByte(Default)
		default:
			l.dispatchDefault(ch)
		}
	}
	l.flushRun()
	l.acc.Flush()
	l.tel.Record(&l.cfg, l.end-start, 0, l.lineNo+1)
}

// saveLineState persists the main sub-state in effect at the *start* of the
// current line - the convention the Resume Finder relies on (design notes
// §9: "the rewind loop must stop at a line that is BOTH at main=top-level
// AND at base fold level").
func (l *Lexer) saveLineState() {
	l.acc.SetLineState(l.lineNo, EncodeLineState(l.main))
}

// advanceLine crosses a single newline byte, persisting the state the new
// line begins with.
func (l *Lexer) advanceLine(newPos int) {
	l.pos = newPos
	l.lineNo++
	l.lineStart = l.pos
	l.saveLineState()
}

// consumeNewline handles the literal '\n' byte the accessor indexes lines
// on. A preceding '\r' (CRLF) was already consumed as plain whitespace by
// the caller's isWhitespace branch on the prior byte, so it coalesces into
// the same Default-styled run without advancing the line counter twice.
func (l *Lexer) consumeNewline() {
	start := l.pos
	l.pos++
	l.emitRange(start, l.pos, Default)
	l.advanceLine(l.pos)
}

// emitByte advances one byte, coalescing it into the current style run.
func (l *Lexer) emitByte(style Style) {
	l.emitRange(l.pos, l.pos+1, style)
	l.pos++
}

// emitRange records that [begin, end) carries style, flushing any
// differently-styled pending run first.
func (l *Lexer) emitRange(begin, end int, style Style) {
	if style != l.runStyle {
		l.flushRun()
		l.runStart = begin
		l.runStyle = style
	}
}

func (l *Lexer) flushRun() {
	if l.pos > l.runStart {
		l.acc.SetStyleRange(l.runStart, l.pos, int(l.runStyle))
	}
	l.runStart = l.pos
}

// emitToken flushes any accumulated scratch-buffer token as a single styled
// range ending at the current position.
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

// dispatchDefault implements spec.md §4.2's "In-default behavior" trigger
// table. Exactly one entry fires per call, possibly consuming more than one
// byte via a scanXxx helper.
func (l *Lexer) dispatchDefault(ch byte) {
	if l.inURLArg && ch != ')' {
		l.emitByte(Value)
		return
	}
	switch ch {
	case '!':
		l.dispatchBang()
	case '"':
		l.dispatchDoubleQuote()
	case '\'':
		l.scanString('\'', SingleString)
	case '#':
		l.dispatchHash()
	case '$':
		l.dispatchDollar()
	case '.':
		l.dispatchDot()
	case '&':
		l.dispatchAmpersand()
	case '(':
		l.dispatchOpenParen()
	case '|', '%', '*', '+', ',', '<', '=', '>', '?':
		l.dispatchSimpleOperator(ch)
	case '/':
		l.dispatchSlash()
	case '{':
		l.dispatchOpenBrace()
	case ':':
		l.dispatchColon()
	case ';':
		l.dispatchSemicolon()
	case '@':
		l.dispatchAt()
	case '[':
		l.dispatchOpenBracket()
	case '}':
		l.dispatchCloseBrace()
	case ']':
		l.emitByte(Operator)
	case '~':
		l.dispatchTilde()
	case '`':
		if l.dialect.LessBacktickEscape() {
			l.emitByte(Operator)
		} else {
			l.emitByte(Default)
		}
	case '-':
		l.dispatchHyphen()
	case ')':
		l.afterParen = false
		if l.inURLArg {
			l.inURLArg = false
			l.emitByte(Value)
		} else {
			l.emitByte(Operator)
		}
	case '^':
		// spec.md §9: treated as operator only under Less/SCSS; no
		// production rule consumes it under any dialect, so it is a
		// no-op either way.
		l.emitByte(Default)
	default:
		switch {
		case isDigit(ch):
			l.scanNumber()
		case isWordByte(ch):
			l.scanWordToken()
		default:
			l.emitByte(Default)
		}
	}
}

func (l *Lexer) dispatchSimpleOperator(ch byte) {
	if ch == ',' {
		l.afterParen = true
	} else {
		l.afterParen = false
	}
	l.emitByte(Operator)
}

// dispatchOpenParen handles '(' - ordinarily an operator, but when it
// immediately follows a {url, url-prefix, domain, regexp} value token it
// opens the URL-argument sub-mode (spec.md §4.2 "Special identifier
// sequences") and stays styled value.
func (l *Lexer) dispatchOpenParen() {
	l.afterParen = true
	if l.pendingURLArg {
		l.pendingURLArg = false
		l.inURLArg = true
		l.emitByte(Value)
		return
	}
	l.emitByte(Operator)
}

func (l *Lexer) dispatchBang() {
	if l.main == StateInPropertyValue {
		l.scanImportant()
		return
	}
	l.emitByte(Operator)
}

func (l *Lexer) dispatchDoubleQuote() {
	if l.dialect.LessCssEscape() && l.stringAux == StringLessEscape {
		l.stringAux = StringPlain
		l.emitByte(Operator)
		return
	}
	l.scanString('"', DoubleString)
}

func (l *Lexer) dispatchHash() {
	if l.main.IsValueContext() {
		l.scanColorHash()
		return
	}
	l.main = StateInSelector
	begin := l.pos
	l.pos++ // consume '#'
	if isWordByte(l.peek(0)) {
		l.emitRange(begin, l.pos, Operator)
		l.flushRun()
		l.scanIDSelector()
	} else {
		l.emitRange(begin, l.pos, Operator)
		l.flushRun()
	}
}

func (l *Lexer) dispatchDollar() {
	if !l.dialect.ScssDollarVariables() {
		l.emitByte(Operator)
		return
	}
	if l.main == StateTopLevel {
		l.main = StateScssAssignment
	}
	l.scanScssVariable()
}

func (l *Lexer) dispatchDot() {
	if l.main.IsValueContext() && isDigit(l.peek(1)) {
		l.scanNumber()
		return
	}
	begin := l.pos
	l.pos++
	if l.main.IsSelectorCapable() && isWordByte(l.peek(0)) {
		l.emitRange(begin, l.pos, Operator)
		l.flushRun()
		l.main = StateInSelector
		l.scanClassSelector()
	} else {
		l.emitRange(begin, l.pos, Operator)
		l.flushRun()
	}
}

func (l *Lexer) dispatchAmpersand() {
	if l.dialect.NestingExtensions() && l.main == StateAmbiguous && l.peek(1) == ':' {
		l.emitByte(Operator)
		l.dispatchColon()
		return
	}
	l.emitByte(Default)
}

func (l *Lexer) dispatchSlash() {
	if l.peek(1) == '*' {
		begin := l.pos
		l.pos += 2
		l.emitRange(begin, l.pos, Comment)
		l.scanCommentBody(CommentBlock, false)
		return
	}
	if l.peek(1) == '/' && l.dialect.LineCommentsAllowed() {
		begin := l.pos
		l.pos += 2
		l.emitRange(begin, l.pos, Comment)
		l.scanCommentBody(CommentLine, false)
		return
	}
	l.emitByte(Operator)
}

// dispatchOpenBrace implements Table 1.
func (l *Lexer) dispatchOpenBrace() {
	switch {
	case l.main == StateAmbiguous:
		// stays ambiguous
	case l.main == StateTopLevel || l.main == StateInSelector:
		if l.dialect.AmbiguousAfterBrace() {
			l.main = StateAmbiguous
		} else {
			l.main = StateInDeclarationName
		}
		l.nestedDecl++
	case l.main == StateInFontFace:
		l.main = StateInDeclarationName
		l.nestedDecl++
	case l.main == StateInPropertyValue:
		if l.dialect.Scss {
			l.main = StateInDeclarationName
		} else {
			l.main = StateInSelector
		}
		l.nestedDecl++
	case l.main == StateInMediaTopLevel:
		l.main = StateInSelector
	}
	l.emitByte(Operator)
}

func (l *Lexer) dispatchColon() {
	next := l.peek(1)
	isElement := next == ':'
	ambiguousLookahead := l.main == StateAmbiguous && l.lookaheadShowsBrace()
	wordFollows := isWordByte(next) || next == ':'
	if wordFollows && (l.main.IsSelectorCapable() || ambiguousLookahead) {
		l.emitByte(Operator)
		if isElement {
			l.emitByte(Operator)
		}
		l.scanPseudo(isElement)
		return
	}
	l.emitByte(Operator)
	switch l.main {
	case StateInDeclarationName, StateAmbiguous:
		l.main = StateInPropertyValue
	}
}

// lookaheadShowsBrace scans forward on the current line (bounded) looking
// for the first of '{', ';', '}' to decide whether an ambiguous `:` is
// really a pseudo-class/element trigger (spec.md §4.2).
func (l *Lexer) lookaheadShowsBrace() bool {
	const boundedLookahead = 200
	for i := 1; i < boundedLookahead; i++ {
		b := l.peek(i)
		switch b {
		case '{':
			return true
		case ';', '}', 0, '\n':
			return false
		}
	}
	return false
}

func (l *Lexer) dispatchSemicolon() {
	switch {
	case l.dialect.Scss && l.main == StateScssAssignment:
		l.main = StateTopLevel
	case l.dialect.Less || l.dialect.Scss:
		l.main = StateAmbiguous
	case l.inTopLevelDirective:
		l.main = StateTopLevel
		l.inTopLevelDirective = false
	default:
		l.main = StateInDeclarationName
	}
	l.emitByte(Operator)
}

func (l *Lexer) dispatchAt() {
	begin := l.pos
	l.pos++
	l.emitRange(begin, l.pos, Operator)
	l.flushRun()
	if isWordByte(l.peek(0)) {
		l.scanDirective()
	}
}

func (l *Lexer) dispatchOpenBracket() {
	if !l.main.IsSelectorCapable() {
		l.emitByte(Operator)
		return
	}
	l.emitByte(Operator)
	for isWhitespace(l.peek(0)) {
		l.emitByte(Default)
	}
	if b := l.peek(0); isAlpha(b) || b == '_' || b >= 0x80 {
		l.scanAttribute()
	}
}

func (l *Lexer) dispatchCloseBrace() {
	if l.nestedDecl > 0 {
		l.nestedDecl--
	}
	l.main = StateTopLevel
	l.emitByte(Operator)
}

func (l *Lexer) dispatchTilde() {
	begin := l.pos
	l.pos++
	l.emitRange(begin, l.pos, Operator)
	l.flushRun()
	if l.dialect.LessCssEscape() && l.peek(0) == '"' {
		l.stringAux = StringLessEscape
	}
}

func (l *Lexer) dispatchHyphen() {
	if l.main.IsValueContext() {
		if isDigit(l.peek(1)) {
			l.scanNumber()
			return
		}
		if isWordByte(l.peek(1)) {
			l.scanWordToken()
			return
		}
		l.emitByte(Operator)
		return
	}
	if l.dialect.Less && l.main.IsSelectorCapable() && l.afterParen && isDigit(l.peek(1)) {
		l.scanNumber()
		return
	}
	l.scanWordToken()
}

func (l *Lexer) String() string {
	return fmt.Sprintf("csslex.Lexer{main=%s, pos=%d}", l.main, l.pos)
}
