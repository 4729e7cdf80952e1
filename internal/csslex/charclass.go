package csslex

// Byte classification helpers for the CSS state machine's trigger-byte
// dispatch (spec.md §4.2).

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isWordByte is the class a word run continues over: alpha, digit,
// underscore, hyphen, or high byte.
func isWordByte(b byte) bool {
	return isAlpha(b) || b == '_' || b >= 0x80 || isDigit(b) || b == '-'
}

// isIdentStartByte is the narrower class that begins an identifier/tag
// token (alpha, underscore, or high byte - not a leading digit or hyphen).
func isIdentStartByte(b byte) bool {
	return isAlpha(b) || b == '_' || b >= 0x80
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\f'
}

func isNewline(b byte) bool {
	return b == '\n' || b == '\r' || b == '\f'
}
