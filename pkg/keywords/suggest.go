package keywords

import "github.com/lithammer/fuzzysearch/fuzzy"

// Suggest returns the closest known words to an unrecognized token, for
// diagnostics only (e.g. `edlex colorize --explain` reporting why an
// identifier was styled unknown-identifier rather than identifier2).
// Grounded on runtime/planner/planner.go's use of fuzzy.RankFindFold for
// "did you mean" suggestions against a candidate list.
func Suggest(index int, text string, limit int) []string {
	list, ok := lists[index]
	if !ok {
		return nil
	}
	ranks := fuzzy.RankFindFold(text, list.words())
	if len(ranks) == 0 {
		return nil
	}
	ranks.Sort()
	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}
	out := make([]string, len(ranks))
	for i, r := range ranks {
		out[i] = r.Target
	}
	return out
}
