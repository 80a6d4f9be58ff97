// internal/platform/ui/presenter.go
package ui

import (
	"io"
	"strings"
	"time"

	"phishscan/internal/core/domain"
)

// Mode selects a Presenter implementation.
type Mode string

const (
	ModePretty Mode = "pretty" // pterm boxes and colors
	ModeRaw    Mode = "raw"    // one logfmt line per event
	ModeJSON   Mode = "json"   // one JSON object per event
	ModeQuiet  Mode = "quiet"  // nothing
)

// ParseMode maps a name onto a Mode. Unknown names give ModePretty.
func ParseMode(s string) Mode {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeRaw:
		return ModeRaw
	case ModeJSON:
		return ModeJSON
	case ModeQuiet:
		return ModeQuiet
	default:
		return ModePretty
	}
}

// Presenter renders the progress and results of a check run for a human.
type Presenter interface {
	// Banner prints the figlet banner.
	Banner(version string)

	// Start announces a run.
	Start(info RunInfo)

	// Result shows the outcome for one URL.
	Result(item domain.BatchItem)

	Info(msg string)
	Warning(msg string)
	Error(msg string)

	// Finish prints the summary of the run.
	Finish(stats RunStats)

	Close() error
}

// RunInfo describes a run before it starts.
type RunInfo struct {
	URLs      int
	Workers   int
	Scheduler string
	Explain   bool
}

// RunStats summarises a finished run.
type RunStats struct {
	Total      int
	Phishing   int
	Suspicious int
	Legitimate int
	Failed     int
	Duration   time.Duration
}

// Tally counts items by outcome.
func Tally(items []domain.BatchItem, took time.Duration) RunStats {
	stats := RunStats{Total: len(items), Duration: took}
	for _, it := range items {
		switch StatusOf(it) {
		case StatusPhishing:
			stats.Phishing++
		case StatusSuspicious:
			stats.Suspicious++
		case StatusLegitimate:
			stats.Legitimate++
		default:
			stats.Failed++
		}
	}
	return stats
}

// New returns the presenter for mode writing to w.
func New(mode Mode, w io.Writer) Presenter {
	switch mode {
	case ModeRaw:
		return NewRawPresenter(w, LogFormatText)
	case ModeJSON:
		return NewRawPresenter(w, LogFormatJSON)
	case ModeQuiet:
		return NewNoopPresenter()
	default:
		return NewPTermPresenter(w)
	}
}
