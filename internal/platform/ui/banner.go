// internal/platform/ui/banner.go
package ui

import (
	"strings"

	"github.com/common-nighthawk/go-figure"
)

// BannerFont is the figlet font of the banner.
const BannerFont = "standard"

// Banner renders the figlet banner followed by a tagline.
func Banner(version string) string {
	art := figure.NewFigure("phishscan", BannerFont, true).String()

	var b strings.Builder
	b.WriteString(strings.TrimRight(art, "\n"))
	b.WriteString("\n")
	b.WriteString(SeparatorLight)
	b.WriteString("\n  rule-based phishing URL classifier")
	if version != "" {
		b.WriteString("  v")
		b.WriteString(strings.TrimPrefix(version, "v"))
	}
	b.WriteString("\n")
	b.WriteString(SeparatorLight)
	b.WriteString("\n")
	return b.String()
}
