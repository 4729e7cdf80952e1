package tcllex

// scanComment implements spec.md §4.3's "Transitions from comment": it
// ends on an unescaped CR/LF (left for the main loop to consume),
// tracks brace balance via inCmtBraceCnt, and - if that balance goes
// negative while the enclosing mode-stack top is in-brace - treats the
// unmatched `}` as the close of that enclosing brace rather than as
// ordinary comment text.
func (l *Lexer) scanComment() {
	begin := l.pos
	if l.lastVisibleStyle != Comment {
		l.aux.inCmtBraceCnt = 0
	}
	l.pos++ // consume '#'

	for l.pos < l.end {
		ch := l.text[l.pos]
		switch {
		case ch == '\\' && isNewline(l.peek(1)):
			l.pos++
			sawLF := l.text[l.pos] == '\n'
			if l.text[l.pos] == '\r' && l.peek(1) == '\n' {
				l.pos += 2
				sawLF = true
			} else {
				l.pos++
			}
			l.emitRange(begin, l.pos, Comment)
			if sawLF {
				l.advanceLine()
				l.fold.Visible()
			}
			begin = l.pos
		case ch == '\\':
			l.pos += 2
		case isNewline(ch):
			l.emitToken(begin, Comment)
			return
		case ch == '{':
			l.aux.inCmtBraceCnt++
			l.pos++
		case ch == '}':
			l.aux.inCmtBraceCnt--
			if l.aux.inCmtBraceCnt < 0 && l.modes.Top() == ModeInBrace {
				l.emitToken(begin, Comment)
				l.modes.Pop()
				l.fold.Dec()
				l.emitByte(Operator)
				l.aux.cmdStart = false
				return
			}
			l.pos++
		default:
			l.pos++
		}
	}
	l.emitToken(begin, Comment)
}
