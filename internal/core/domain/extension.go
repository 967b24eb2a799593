// internal/core/domain/extension.go
package domain

import "strings"

// NormalizeExt returns the canonical lowercase, dot-prefixed form of an extension token.
// "js", ".JS" and " Js " all become ".js". Empty input yields ".".
func NormalizeExt(raw string) string {
	ext := strings.ToLower(strings.TrimSpace(raw))
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}

// SplitExt splits a file name into base name and extension.
// Leading dots are part of the base name, so ".bashrc" has no extension
// and "archive.tar.gz" has extension ".gz".
func SplitExt(name string) (base, ext string) {
	rest := strings.TrimLeft(name, ".")
	idx := strings.LastIndex(rest, ".")
	if idx < 0 {
		return name, ""
	}
	cut := len(name) - len(rest) + idx
	return name[:cut], name[cut:]
}
