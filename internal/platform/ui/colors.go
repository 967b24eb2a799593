// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Palette
var (
	GhostCyan  = pterm.NewRGB(0, 206, 209)
	MoltenGold = pterm.NewRGB(255, 182, 39)
	InfernoRed = pterm.NewRGB(215, 38, 56)
	AshGray    = pterm.NewRGB(128, 128, 128)
)

// Styles per context
var (
	StyleSuccess   = GhostCyan.ToRGBStyle()
	StyleWarning   = MoltenGold.ToRGBStyle()
	StyleError     = InfernoRed.ToRGBStyle()
	StyleSecondary = AshGray.ToRGBStyle()
)
