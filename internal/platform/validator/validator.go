// internal/platform/validator/validator.go
package validator

import (
	"path/filepath"
	"strings"
)

// Extension validators

// IsExtensionToken reports whether tok can name a file extension:
// non-empty after trimming, more than a bare dot, and free of path separators and spaces.
func IsExtensionToken(tok string) bool {
	tok = strings.TrimSpace(tok)
	if tok == "" || strings.Trim(tok, ".") == "" {
		return false
	}
	if strings.ContainsAny(tok, `/\ `+"\t") {
		return false
	}
	return true
}

// IsCompoundExtension reports whether tok has more than one dot-separated part,
// e.g. "tar.gz". Files are matched on their last extension only, so such
// tokens never match anything.
func IsCompoundExtension(tok string) bool {
	return strings.Contains(strings.TrimPrefix(strings.TrimSpace(tok), "."), ".")
}

// Pattern validators

// IsGlobPattern reports whether p is a well-formed fnmatch glob.
func IsGlobPattern(p string) bool {
	if strings.TrimSpace(p) == "" {
		return false
	}
	_, err := filepath.Match(FnmatchToGlob(p), "")
	return err == nil
}

// FnmatchToGlob rewrites an fnmatch pattern into filepath.Match syntax.
// "[!...]" negates a class, a leading "^" or "]" inside a class is literal,
// and a backslash is always a literal character.
func FnmatchToGlob(p string) string {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case !inClass && c == '[':
			b.WriteByte('[')
			inClass = true
			if i+1 < len(p) && p[i+1] == '!' {
				b.WriteByte('^')
				i++
			} else if i+1 < len(p) && p[i+1] == '^' {
				b.WriteString(`\^`)
				i++
			}
			if i+1 < len(p) && p[i+1] == ']' {
				b.WriteString(`\]`)
				i++
			}
		case inClass && c == ']':
			b.WriteByte(']')
			inClass = false
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Path validators

// IsSamePath reports whether a and b resolve to the same absolute, cleaned path.
func IsSamePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// IsWithin reports whether path is dir itself or lies below it.
func IsWithin(path, dir string) bool {
	absPath, errP := filepath.Abs(path)
	absDir, errD := filepath.Abs(dir)
	if errP != nil || errD != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
