// internal/core/domain/header.go
package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// HeaderTimeLayout is the layout of the ARCHIVED timestamp.
const HeaderTimeLayout = "2006-01-02 15:04:05"

// CommentStyle is the comment syntax used to wrap a header line.
type CommentStyle struct {
	Family string
	Prefix string
	Suffix string
}

var (
	StyleHash        = CommentStyle{Family: "hash", Prefix: "# "}
	StyleDoubleSlash = CommentStyle{Family: "double-slash", Prefix: "// "}
	StyleDash        = CommentStyle{Family: "dash", Prefix: "-- "}
	StyleMarkup      = CommentStyle{Family: "markup", Prefix: "<!-- ", Suffix: " -->"}
	StyleUnknown     = CommentStyle{Family: "unknown", Prefix: ":: "}
)

var commentStyles = buildCommentStyles(map[CommentStyle][]string{
	StyleHash: {".py", ".rb", ".sh", ".yaml", ".yml", ".conf", ".toml", ".pl", ".dockerfile"},
	StyleDoubleSlash: {".c", ".cpp", ".cs", ".java", ".js", ".jsx", ".ts", ".tsx",
		".sol", ".go", ".rs", ".php", ".swift", ".dart", ".txt", ".css", ".scss"},
	StyleDash:   {".sql", ".lua", ".hs"},
	StyleMarkup: {".html", ".xml", ".htm", ".svg", ".ejs", ".vue", ".jsp"},
})

func buildCommentStyles(families map[CommentStyle][]string) map[string]CommentStyle {
	table := make(map[string]CommentStyle)
	for style, exts := range families {
		for _, ext := range exts {
			table[ext] = style
		}
	}
	return table
}

// CommentStyleFor returns the comment syntax of an output extension.
func CommentStyleFor(ext string) CommentStyle {
	if style, ok := commentStyles[NormalizeExt(ext)]; ok {
		return style
	}
	return StyleUnknown
}

// FormatHeader builds the provenance line written at the top of every copied file:
//
//	<prefix>ORIGINAL_PATH: <relative-path> | ARCHIVED: <timestamp>[<suffix>]
//
// The path is relative to root; when it cannot be made relative the
// source path is used as given.
func FormatHeader(outExt, sourcePath, root string, now time.Time) string {
	style := CommentStyleFor(outExt)

	relPath, err := filepath.Rel(root, sourcePath)
	if err != nil {
		relPath = sourcePath
	}

	return fmt.Sprintf("%sORIGINAL_PATH: %s | ARCHIVED: %s%s",
		style.Prefix, relPath, now.Format(HeaderTimeLayout), style.Suffix)
}
