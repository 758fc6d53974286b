package podfic

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// TagFilter matches tags against glob patterns, ignoring case.
// The zero value matches nothing.
type TagFilter struct {
	patterns []glob.Glob
}

// NewTagFilter compiles patterns such as "*crack*" or "Author's Note?".
func NewTagFilter(patterns []string) (TagFilter, error) {
	filter := TagFilter{}
	for _, pattern := range patterns {
		g, err := glob.Compile(strings.ToLower(pattern))
		if err != nil {
			return TagFilter{}, fmt.Errorf("invalid tag pattern %q: %w", pattern, err)
		}
		filter.patterns = append(filter.patterns, g)
	}
	return filter, nil
}

// Match reports whether any pattern matches tag.
func (f TagFilter) Match(tag string) bool {
	tag = strings.ToLower(tag)
	for _, g := range f.patterns {
		if g.Match(tag) {
			return true
		}
	}
	return false
}
