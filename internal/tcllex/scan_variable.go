package tcllex

// scanVariable implements spec.md §4.3's "Transitions from default: `$`"
// entry rule and the "Transitions from variable" continuation rule in one
// pass, since neither requires returning control to the main loop
// mid-token: `$name`, `$ns::name`, and `${braced name}` all resolve in a
// single call. A `$` followed directly by `::` is emitted as an operator.
func (l *Lexer) scanVariable() {
	begin := l.pos
	l.pos++ // consume '$'

	braced := false
	switch {
	case l.pos < l.end && l.text[l.pos] == '{':
		braced = true
		l.aux.varBraced = true
		l.pos++
	case l.pos < l.end && isWordByte(l.text[l.pos]):
		l.aux.varBraced = false
	default:
		// Bare '$' with nothing to substitute: operator (spec.md §4.3).
		l.emitToken(begin, Operator)
		l.aux.cmdStart = false
		return
	}

	if braced {
		// A braced name runs to the matching '}' - scenario S6's
		// `${c(d)}` shows punctuation other than word bytes is valid
		// inside the braces, unlike the bare-name form below.
		for l.pos < l.end && l.text[l.pos] != '}' && !isNewline(l.text[l.pos]) {
			l.pos++
		}
		if l.pos < l.end && l.text[l.pos] == '}' {
			l.pos++
		}
		l.emitToken(begin, Variable)
		l.aux.cmdStart = false
		return
	}

	for l.pos < l.end {
		ch := l.text[l.pos]
		if isWordByte(ch) {
			l.pos++
			continue
		}
		if ch == ':' && l.peek(1) == ':' {
			l.pos += 2
			continue
		}
		break
	}
	l.emitToken(begin, Variable)
	l.aux.cmdStart = false
}
