// internal/core/walker/exclude.go
package walker

import (
	"path/filepath"

	"flatsource/internal/platform/errors"
	"flatsource/internal/platform/validator"
)

// ExclusionMatcher tests bare directory names against shell-style globs.
type ExclusionMatcher struct {
	patterns []string
}

// NewExclusionMatcher compiles fnmatch patterns: "[!...]" negates a class,
// while "^" and backslashes are literal. A malformed pattern yields ErrInvalidPattern.
func NewExclusionMatcher(patterns []string) (*ExclusionMatcher, error) {
	m := &ExclusionMatcher{patterns: make([]string, 0, len(patterns))}
	for _, p := range patterns {
		translated := validator.FnmatchToGlob(p)
		if _, err := filepath.Match(translated, ""); err != nil {
			return nil, errors.Errorf("%w: %q: %v", errors.ErrInvalidPattern, p, err)
		}
		m.patterns = append(m.patterns, translated)
	}
	return m, nil
}

// Excluded reports whether name matches any pattern. name must be a single
// path segment; it is never interpreted as a path.
func (m *ExclusionMatcher) Excluded(name string) bool {
	if m == nil {
		return false
	}
	for _, p := range m.patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

// Len returns the number of patterns.
func (m *ExclusionMatcher) Len() int {
	if m == nil {
		return 0
	}
	return len(m.patterns)
}
