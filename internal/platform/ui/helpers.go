// internal/platform/ui/helpers.go
package ui

import (
	"fmt"
	"strings"
	"time"
)

// formatDuration renders a duration for humans.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

// scoreBar draws score out of max as a fixed-width bar. Scores above max
// fill the bar.
func scoreBar(score, max, width int) string {
	if max <= 0 || width <= 0 {
		return ""
	}
	filled := score * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
