// internal/platform/ui/symbols.go
package ui

import (
	"github.com/pterm/pterm"

	"phishscan/internal/core/domain"
)

// Status is the outcome of one checked URL as shown on the terminal.
type Status int

const (
	StatusLegitimate Status = iota
	StatusSuspicious
	StatusPhishing
	StatusError
)

// StatusOf maps a batch item onto a Status.
func StatusOf(item domain.BatchItem) Status {
	if item.Report == nil {
		return StatusError
	}
	switch item.Report.Classification {
	case domain.ClassificationPhishing:
		return StatusPhishing
	case domain.ClassificationSuspicious:
		return StatusSuspicious
	default:
		return StatusLegitimate
	}
}

func (s Status) String() string {
	switch s {
	case StatusLegitimate:
		return "legitimate"
	case StatusSuspicious:
		return "suspicious"
	case StatusPhishing:
		return "phishing"
	default:
		return "error"
	}
}

// Symbol returns the Unicode mark for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusLegitimate:
		return "✓"
	case StatusSuspicious:
		return "⚠"
	case StatusPhishing:
		return "✗"
	default:
		return "?"
	}
}

// Style returns the palette style for the status.
func (s Status) Style() *pterm.Style {
	switch s {
	case StatusLegitimate:
		return StyleSafe
	case StatusSuspicious:
		return StyleWarning
	case StatusPhishing:
		return StyleDanger
	default:
		return StyleSecondary
	}
}

// Icons
var (
	IconURL     = "🔗"
	IconScore   = "📊"
	IconTime    = "⏱"
	IconWorkers = "⚙️"
	IconDomain  = "🌐"
)

// Separators
var (
	SeparatorHeavy = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	SeparatorLight = "────────────────────────────────────────────"
)
