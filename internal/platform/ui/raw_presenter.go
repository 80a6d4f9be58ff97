// internal/platform/ui/raw_presenter.go
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"phishscan/internal/core/domain"
)

// LogFormat is the line format of the raw presenter.
type LogFormat string

const (
	LogFormatText LogFormat = "text" // logfmt
	LogFormatJSON LogFormat = "json"
)

// RawPresenter writes one line per event, without colors. Used for
// non-interactive output.
type RawPresenter struct {
	mu     sync.Mutex
	out    io.Writer
	format LogFormat
	now    func() time.Time
}

// NewRawPresenter creates a presenter writing to w (stdout when nil).
func NewRawPresenter(w io.Writer, format LogFormat) *RawPresenter {
	if w == nil {
		w = os.Stdout
	}
	return &RawPresenter{out: w, format: format, now: time.Now}
}

func (r *RawPresenter) log(level, message string, fields map[string]any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	timestamp := r.now().UTC().Format(time.RFC3339)

	if r.format == LogFormatJSON {
		r.logJSON(timestamp, level, message, fields)
	} else {
		r.logText(timestamp, level, message, fields)
	}
}

// logText writes "timestamp LEVEL message key=value ..." with keys sorted.
func (r *RawPresenter) logText(timestamp, level, message string, fields map[string]any) {
	parts := []string{timestamp, fmt.Sprintf("%-5s", level), message}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, formatValue(fields[k])))
	}

	fmt.Fprintln(r.out, strings.Join(parts, " "))
}

func (r *RawPresenter) logJSON(timestamp, level, message string, fields map[string]any) {
	entry := map[string]any{
		"timestamp": timestamp,
		"level":     level,
		"message":   message,
	}
	if len(fields) > 0 {
		entry["data"] = fields
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	fmt.Fprintln(r.out, string(data))
}

// formatValue quotes strings containing spaces.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		if strings.ContainsAny(val, " \t\"") {
			return fmt.Sprintf("%q", val)
		}
		return val
	case []string:
		return formatValue(strings.Join(val, ","))
	case time.Duration:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func (r *RawPresenter) Banner(version string) {
	r.log("INFO", "phishscan", map[string]any{"version": version})
}

func (r *RawPresenter) Start(info RunInfo) {
	r.log("INFO", "check_started", map[string]any{
		"urls":      info.URLs,
		"workers":   info.Workers,
		"scheduler": info.Scheduler,
		"explain":   info.Explain,
	})
}

func (r *RawPresenter) Result(item domain.BatchItem) {
	if item.Report == nil {
		r.log("ERROR", "url_failed", map[string]any{
			"url":   item.URL,
			"kind":  item.ErrorKind,
			"error": item.Error,
		})
		return
	}

	rep := item.Report
	r.log("INFO", "url_checked", map[string]any{
		"url":          item.URL,
		"prediction":   string(rep.Classification),
		"score":        rep.RiskScore,
		"max_score":    rep.MaxScore,
		"confidence":   string(rep.Confidence),
		"risk_factors": rep.RiskFactors,
	})
}

func (r *RawPresenter) Info(msg string)    { r.log("INFO", msg, nil) }
func (r *RawPresenter) Warning(msg string) { r.log("WARN", msg, nil) }
func (r *RawPresenter) Error(msg string)   { r.log("ERROR", msg, nil) }

func (r *RawPresenter) Finish(stats RunStats) {
	r.log("INFO", "check_completed", map[string]any{
		"total":      stats.Total,
		"phishing":   stats.Phishing,
		"suspicious": stats.Suspicious,
		"legitimate": stats.Legitimate,
		"failed":     stats.Failed,
		"duration":   stats.Duration,
	})
}

func (r *RawPresenter) Close() error {
	return nil
}
