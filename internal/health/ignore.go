package health

import "regexp"

// IgnoreRules suppresses diagnostic lines an operator considers noise.
// A line is ignored when any pattern matches anywhere within it.
// The zero value ignores nothing.
type IgnoreRules struct {
	patterns []*regexp.Regexp
}

// NewIgnoreRules returns rules over the given compiled patterns.
// Nil patterns are skipped.
func NewIgnoreRules(patterns ...*regexp.Regexp) IgnoreRules {
	kept := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		if p != nil {
			kept = append(kept, p)
		}
	}
	return IgnoreRules{patterns: kept}
}

// Match reports whether line is ignored.
func (r IgnoreRules) Match(line string) bool {
	for _, p := range r.patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// Len returns the number of patterns.
func (r IgnoreRules) Len() int {
	return len(r.patterns)
}

// Patterns returns the source text of each pattern, in order.
func (r IgnoreRules) Patterns() []string {
	out := make([]string, len(r.patterns))
	for i, p := range r.patterns {
		out[i] = p.String()
	}
	return out
}
