package tcllex

// baseState is the current token-scanning mode - orthogonal to the
// persisted ModeStack, which tracks the nested bracket/brace/quote
// *context* rather than what kind of token is mid-flight.
type baseState int

const (
	baseDefault baseState = iota
	baseWord
	baseVariable
	baseComment
	baseString
)

// auxFlags bundles the non-persisted counters spec.md §3 lists alongside
// the mode stack: inEscape, inStrBraceCnt, inCmtBraceCnt, cmdStart,
// varBraced.
type auxFlags struct {
	inEscape     bool
	cmdStart     bool
	varBraced    bool
	inStrBraceCnt int // starts 0 when the string began from a brace context, -1 otherwise ("ignore braces")
	inCmtBraceCnt int
}
