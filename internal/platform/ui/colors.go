// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// BannerBlue colors the figlet banner.
var BannerBlue = pterm.NewRGB(52, 152, 219)

// Styles shared by the presenters.
var (
	StyleSafe      = pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	StyleWarning   = pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	StyleDanger    = pterm.NewStyle(pterm.FgRed, pterm.Bold)
	StyleSecondary = pterm.NewStyle(pterm.FgGray)
	StyleAccent    = pterm.NewStyle(pterm.FgCyan)
)

// DisableColor turns off every pterm color and style for the process.
func DisableColor() {
	pterm.DisableStyling()
}
