package csslex

import "strings"

// units4, units3, units2, units1 are the case-insensitive numeric unit
// suffixes recognized after a number (spec.md §4.2 "Numeric units"). The
// "ss" 2-char entry is preserved literally per spec.md §9's open question -
// it is not a standard CSS unit, possibly intended as an "ms" typo, but the
// behavior is carried unchanged rather than "fixed".
var units4 = []string{"grad"}
var units3 = []string{"deg", "rad", "khz"}
var units2 = []string{"em", "ex", "px", "cm", "mm", "in", "pt", "pc", "ms", "ss", "hz"}
var units1 = []string{"%", "s", "S"}

// matchUnit returns the length of a unit suffix in text starting at pos, or
// 0 if none matches. A match is only accepted if the byte following the
// candidate unit is not a word byte (so "pxy" is not a unit + stray "y").
func matchUnit(text []byte, pos int) int {
	try := func(n int, table []string) int {
		if pos+n > len(text) {
			return 0
		}
		cand := string(text[pos : pos+n])
		for _, u := range table {
			if n == 1 {
				if cand == u {
					if isUnitBoundary(text, pos+n) {
						return n
					}
				}
				continue
			}
			if strings.EqualFold(cand, u) && isUnitBoundary(text, pos+n) {
				return n
			}
		}
		return 0
	}
	if n := try(4, units4); n > 0 {
		return n
	}
	if n := try(3, units3); n > 0 {
		return n
	}
	if n := try(2, units2); n > 0 {
		return n
	}
	if n := try(1, units1); n > 0 {
		return n
	}
	return 0
}

func isUnitBoundary(text []byte, pos int) bool {
	if pos >= len(text) {
		return true
	}
	return !isWordByte(text[pos])
}
