// Package csslex implements the CSS (+Less/SCSS) incremental lexer:
// spec.md §4.2 (state machine), §4.1 CSS policy (resume finder), and the CSS
// half of §4.5 (fold pass run as a second pass over the document).
package csslex

// Style is the closed enumeration of CSS style tags (spec.md §3).
type Style int

const (
	Default Style = iota
	Tag
	Class
	PseudoClass
	UnknownPseudoClass
	ExtendedPseudoClass
	PseudoElement
	ExtendedPseudoElement
	Operator
	Identifier
	Identifier2
	Identifier3
	ExtendedIdentifier
	UnknownIdentifier
	Value
	Comment
	Number
	Important
	Directive
	ID
	Attribute
	Mixin
	DoubleString
	SingleString
	StringEOL
)

var styleNames = [...]string{
	Default:               "default",
	Tag:                   "tag",
	Class:                 "class",
	PseudoClass:           "pseudoclass",
	UnknownPseudoClass:    "unknown-pseudoclass",
	ExtendedPseudoClass:   "extended-pseudoclass",
	PseudoElement:         "pseudoelement",
	ExtendedPseudoElement: "extended-pseudoelement",
	Operator:              "operator",
	Identifier:            "identifier",
	Identifier2:           "identifier2",
	Identifier3:           "identifier3",
	ExtendedIdentifier:    "extended-identifier",
	UnknownIdentifier:     "unknown-identifier",
	Value:                 "value",
	Comment:               "comment",
	Number:                "number",
	Important:             "important",
	Directive:             "directive",
	ID:                    "id",
	Attribute:             "attribute",
	Mixin:                 "mixin",
	DoubleString:          "double-string",
	SingleString:          "single-string",
	StringEOL:             "string-eol",
}

func (s Style) String() string {
	if int(s) >= 0 && int(s) < len(styleNames) {
		return styleNames[s]
	}
	return "unknown-style"
}
