package csslex

import "fmt"

// MainState is the coarse, persisted CSS context (spec.md §3 "CSS main
// sub-states"). It is the only piece of per-line saved state for CSS.
type MainState int

const (
	StateTopLevel MainState = iota
	StateInSelector
	StateInDeclarationName
	StateInPropertyValue
	StateAmbiguous // ambiguous-selector-or-property-name
	StateScssAssignment
	StateInMediaTopLevel
	StateInFontFace
)

var mainStateNames = [...]string{
	StateTopLevel:          "TopLevel",
	StateInSelector:        "InSelector",
	StateInDeclarationName: "InDeclarationName",
	StateInPropertyValue:   "InPropertyValue",
	StateAmbiguous:         "Ambiguous",
	StateScssAssignment:    "ScssAssignment",
	StateInMediaTopLevel:   "InMediaTopLevel",
	StateInFontFace:        "InFontFace",
}

func (s MainState) String() string {
	if int(s) >= 0 && int(s) < len(mainStateNames) {
		return mainStateNames[s]
	}
	return fmt.Sprintf("MainState(%d)", int(s))
}

// IsSelectorCapable reports whether the state allows the selector-oriented
// trigger rules (class `.`, id `#`, attribute `[`, pseudo `:`).
func (s MainState) IsSelectorCapable() bool {
	switch s {
	case StateTopLevel, StateInSelector, StateAmbiguous, StateInMediaTopLevel:
		return true
	default:
		return false
	}
}

// IsValueContext reports whether the state colors bare words/numbers as
// `value` rather than `identifier`/`tag`.
func (s MainState) IsValueContext() bool {
	switch s {
	case StateInPropertyValue, StateScssAssignment:
		return true
	default:
		return false
	}
}

// StringAux tracks the interior of a string token: plain, or (Less only) in
// the middle of a `~"…"` escape that will close as an operator.
type StringAux int

const (
	StringPlain StringAux = iota
	StringLessEscape
)

// CommentAux distinguishes block `/* */` from Less/SCSS line `//` comments.
type CommentAux int

const (
	CommentBlock CommentAux = iota
	CommentLine
)

// IdentifierAux distinguishes a plain identifier from a SCSS `$`-prefixed
// variable.
type IdentifierAux int

const (
	IdentifierPlain IdentifierAux = iota
	IdentifierScssDollar
)

// ImportantPhase drives the `!important` sub-machine (spec.md §4.2).
type ImportantPhase int

const (
	ImportantNone ImportantPhase = iota
	ImportantAfterBang
	ImportantInComment
	ImportantInWhitespace
	ImportantInWord
)

// urlArgKind names the special identifier sequences that open a
// URL-argument sub-mode (spec.md §4.2 "Special identifier sequences").
type urlArgKind int

const (
	notURLArg urlArgKind = iota
	isURLArg
)

// Persisted line-state layout (spec.md §6): main_substate ∈ [0,7], 3 bits.
const mainStateBits = 0x7

// EncodeLineState packs the main sub-state into the persisted per-line int.
func EncodeLineState(main MainState) int {
	return int(main) & mainStateBits
}

// DecodeLineState unpacks the main sub-state from a persisted per-line int.
func DecodeLineState(v int) MainState {
	return MainState(v & mainStateBits)
}
