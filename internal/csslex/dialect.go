package csslex

// Dialect is the Dialect Switchboard (spec.md §2, design notes §9): instead
// of branching inline on isLessDocument/isScssDocument throughout the state
// machine, the two raw flags are turned into a small set of named
// predicates the transition tables consult.
type Dialect struct {
	Less bool
	Scss bool
}

// NewDialect builds a Dialect from the two recognized properties
// (lexer.css.less.language, lexer.css.scss.language).
func NewDialect(less, scss int) Dialect {
	return Dialect{Less: less != 0, Scss: scss != 0}
}

// LineCommentsAllowed reports whether `//` opens a line comment.
func (d Dialect) LineCommentsAllowed() bool { return d.Less || d.Scss }

// ScssDollarVariables reports whether `$name` is an SCSS variable.
func (d Dialect) ScssDollarVariables() bool { return d.Scss }

// LessBacktickEscape reports whether a backtick is a Less escape operator.
func (d Dialect) LessBacktickEscape() bool { return d.Less }

// LessCssEscape reports whether `~"…"` is a Less CSS-escape string form.
func (d Dialect) LessCssEscape() bool { return d.Less }

// AmbiguousAfterBrace reports whether a `{` inside a top-level/in-selector
// context escalates to the ambiguous-selector-or-property-name main state
// (Table 1) rather than the plain CSS in-declaration-name transition.
func (d Dialect) AmbiguousAfterBrace() bool { return d.Less || d.Scss }

// NestingExtensions reports whether either Less or SCSS extension is on.
func (d Dialect) NestingExtensions() bool { return d.Less || d.Scss }
