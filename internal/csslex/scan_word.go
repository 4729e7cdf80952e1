package csslex

// scanRunInto consumes a maximal run of isWordByte bytes starting at the
// current position into buf, bounded by buf's capacity (spec.md §4.4:
// truncated runs are still classified consistently on their prefix).
func (l *Lexer) scanRunInto(buf interface{ Append(byte) }) {
	for l.pos < l.end && isWordByte(l.text[l.pos]) {
		buf.Append(l.text[l.pos])
		l.pos++
	}
}

// scanWordToken is the shared "Alpha/underscore/high-byte" (and leading
// '-') path of spec.md §4.2's default dispatch table.
func (l *Lexer) scanWordToken() {
	begin := l.pos
	l.ident.Reset()
	l.scanRunInto(l.ident)
	text := l.ident.String()

	switch {
	case l.main.IsValueContext():
		l.emitToken(begin, Value)
		lower := toLower(text)
		if isURLArgWord(lower) {
			l.pendingURLArg = true
		} else {
			l.pendingURLArg = false
		}
	case l.main == StateTopLevel || l.main == StateInMediaTopLevel:
		l.main = StateInSelector
		l.emitToken(begin, Tag)
	case l.main == StateInSelector || l.main == StateAmbiguous:
		l.emitToken(begin, Tag)
	default:
		style := ClassifyIdentifier(text, l.lists, true, Identifier)
		l.emitToken(begin, style)
	}
	l.afterParen = false
}

// scanScssVariable handles the SCSS `$name` token (spec.md §4.2 "$"): the
// '$' is part of the identifier run and the token is never reclassified
// against the property lists.
func (l *Lexer) scanScssVariable() {
	begin := l.pos
	l.pos++ // consume '$'
	l.ident.Reset()
	l.scanRunInto(l.ident)
	l.emitToken(begin, Identifier)
	l.afterParen = false
}

// scanIDSelector handles the word run after a selector '#'.
func (l *Lexer) scanIDSelector() {
	begin := l.pos
	l.ident.Reset()
	l.scanRunInto(l.ident)
	l.emitToken(begin, ID)
}

// scanClassSelector handles the word run after a selector '.'.
func (l *Lexer) scanClassSelector() {
	begin := l.pos
	l.ident.Reset()
	l.scanRunInto(l.ident)
	l.emitToken(begin, Class)
}

// scanColorHash handles '#' inside a value/scss-assignment context (a color
// literal like #fff or #112233).
func (l *Lexer) scanColorHash() {
	begin := l.pos
	l.pos++ // consume '#'
	l.ident.Reset()
	l.scanRunInto(l.ident)
	l.emitToken(begin, Value)
}

// scanPseudo classifies the word following a pseudo-class/element ':'/'::'
// trigger (spec.md §4.2 "Pseudo-class/element resolution").
func (l *Lexer) scanPseudo(isElement bool) {
	begin := l.pos
	l.ident.Reset()
	l.scanRunInto(l.ident)
	style := ClassifyPseudo(l.ident.String(), l.lists, isElement)
	l.emitToken(begin, style)
}

// scanDirective handles the word following '@' (spec.md §4.2 "@"). If the
// directive is one of import/charset/namespace at top level, the lexer
// remembers it so the next ';' resets to top-level (Table 2).
func (l *Lexer) scanDirective() {
	begin := l.pos
	l.ident.Reset()
	l.scanRunInto(l.ident)
	text := toLower(l.ident.String())
	l.emitToken(begin, Directive)
	if l.main == StateTopLevel {
		switch text {
		case "import", "charset", "namespace":
			l.inTopLevelDirective = true
		case "media":
			l.main = StateInMediaTopLevel
		case "font-face":
			l.main = StateInFontFace
		}
	}
}

// scanAttribute handles the word inside a selector `[...]` (spec.md §4.2
// "[").
func (l *Lexer) scanAttribute() {
	begin := l.pos
	l.ident.Reset()
	l.scanRunInto(l.ident)
	l.emitToken(begin, Attribute)
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
