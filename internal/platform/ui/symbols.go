// internal/platform/ui/symbols.go
package ui

// Icons used in boxes and panels
var (
	IconMode    = "⚙"
	IconRoot    = "📂"
	IconDest    = "📦"
	IconExclude = "⊘"
	IconFiles   = "📄"
	IconTime    = "⏱"
)

// SeparatorHeavy splits the progress area from the summary
var SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
