// internal/core/walker/ignore.go
package walker

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// GitIgnoreFile is the ignore file read from the scan root.
const GitIgnoreFile = ".gitignore"

// ignoreMatcher applies gitignore rules to root-relative paths.
type ignoreMatcher struct {
	gi    *ignore.GitIgnore
	lines int
}

// loadIgnoreMatcher reads <root>/.gitignore. A missing file yields a nil matcher.
func loadIgnoreMatcher(root string) (*ignoreMatcher, error) {
	data, err := os.ReadFile(filepath.Join(root, GitIgnoreFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, nil
	}

	return &ignoreMatcher{gi: ignore.CompileIgnoreLines(lines...), lines: len(lines)}, nil
}

// Ignored reports whether the root-relative path is ignored.
func (m *ignoreMatcher) Ignored(relPath string, isDir bool) bool {
	if m == nil {
		return false
	}
	rel := filepath.ToSlash(relPath)
	if m.gi.MatchesPath(rel) {
		return true
	}
	// Patterns such as "build/" only match directory paths with a trailing slash.
	return isDir && m.gi.MatchesPath(rel+"/")
}
