package csslex

import "strings"

type importantSpan struct{ begin, end int }

// scanImportant implements the `!important` sub-machine (spec.md §4.2):
// after-bang → in-comment → in-whitespace → in-word. Whitespace and
// `/* … */` may interleave between `!` and the final word. Comment bytes
// always keep the `comment` style; every other byte in the span is styled
// `important` if the word resolves to "important" (case-insensitively),
// or `value` otherwise (spec.md §7: "never resolves - restyle as value").
func (l *Lexer) scanImportant() {
	l.flushRun()

	var pending []importantSpan
	bangBegin := l.pos
	l.pos++
	pending = append(pending, importantSpan{bangBegin, l.pos})

	aborted := false
	word := ""

scan:
	for {
		if l.pos >= l.end {
			aborted = true
			break
		}
		ch := l.text[l.pos]
		switch {
		case isWhitespace(ch):
			begin := l.pos
			for l.pos < l.end && isWhitespace(l.text[l.pos]) {
				l.pos++
			}
			pending = append(pending, importantSpan{begin, l.pos})
		case isNewline(ch):
			begin := l.pos
			for l.pos < l.end && isNewline(l.text[l.pos]) {
				if l.text[l.pos] == '\n' {
					l.advanceLine(l.pos + 1)
				} else {
					l.pos++
				}
			}
			pending = append(pending, importantSpan{begin, l.pos})
		case ch == '/' && l.peek(1) == '*':
			begin := l.pos
			l.pos += 2
			for l.pos < l.end && !(l.text[l.pos] == '*' && l.peek(1) == '/') {
				if l.text[l.pos] == '\n' {
					l.advanceLine(l.pos + 1)
					continue
				}
				l.pos++
			}
			if l.pos < l.end {
				l.pos += 2
			}
			l.acc.SetStyleRange(begin, l.pos, int(Comment))
		case isWordByte(ch):
			begin := l.pos
			l.small.Reset()
			l.scanRunInto(l.small)
			word = l.small.String()
			pending = append(pending, importantSpan{begin, l.pos})
			break scan
		default:
			aborted = true
			break scan
		}
	}

	finalStyle := Value
	if !aborted && strings.EqualFold(word, "important") {
		finalStyle = Important
		l.main = StateInPropertyValue
	}
	for _, s := range pending {
		l.acc.SetStyleRange(s.begin, s.end, int(finalStyle))
	}
	l.runStart = l.pos
	l.runStyle = finalStyle
	l.afterParen = false
}
