// internal/platform/ui/pterm_presenter.go
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pterm/pterm"

	"phishscan/internal/core/domain"
)

const barWidth = 30

// PTermPresenter renders results with pterm boxes, bullet lists and tables.
// Output is built with pterm's Sprint/Srender and written to its writer,
// so it can be captured in tests.
type PTermPresenter struct {
	mu      sync.Mutex
	out     io.Writer
	info    RunInfo
	started time.Time
}

// NewPTermPresenter creates a presenter writing to w (stdout when nil).
func NewPTermPresenter(w io.Writer) *PTermPresenter {
	if w == nil {
		w = os.Stdout
	}
	return &PTermPresenter{out: w}
}

func (p *PTermPresenter) Banner(version string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, BannerBlue.Sprint(Banner(version)))
}

func (p *PTermPresenter) Start(info RunInfo) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.info = info
	p.started = time.Now()

	header := pterm.DefaultHeader.
		WithBackgroundStyle(pterm.NewStyle(pterm.BgCyan)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprint("phishscan - URL check")
	fmt.Fprintln(p.out, header)

	if info.URLs > 1 {
		fmt.Fprintf(p.out, "%s URLs: %d   %s Workers: %d   scheduler: %s\n\n",
			IconURL, info.URLs, IconWorkers, info.Workers, StyleAccent.Sprint(info.Scheduler))
	}
}

func (p *PTermPresenter) Result(item domain.BatchItem) {
	p.mu.Lock()
	defer p.mu.Unlock()

	status := StatusOf(item)
	title := fmt.Sprintf("%s %s", status.Symbol(), status.Style().Sprint(strings.ToUpper(status.String())))

	if item.Report == nil {
		body := fmt.Sprintf("%s %s\n%s", IconURL, item.URL, StyleDanger.Sprint(item.Error))
		fmt.Fprintln(p.out, pterm.DefaultBox.WithTitle(title).Sprint(body))
		return
	}

	r := item.Report
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", IconURL, r.URL)
	fmt.Fprintf(&b, "%s %s %d/%d  %s\n", IconScore,
		status.Style().Sprint(scoreBar(r.RiskScore, r.MaxScore, barWidth)),
		r.RiskScore, r.MaxScore, r.Confidence)
	if r.RegisteredDomain != "" {
		fmt.Fprintf(&b, "%s %s\n", IconDomain, StyleSecondary.Sprint(r.RegisteredDomain))
	}
	b.WriteString(r.Message)

	fmt.Fprintln(p.out, pterm.DefaultBox.WithTitle(title).Sprint(b.String()))

	items := make([]pterm.BulletListItem, 0, len(r.RiskFactors))
	for _, f := range r.RiskFactors {
		items = append(items, pterm.BulletListItem{Level: 0, Text: f})
	}
	if list, err := pterm.DefaultBulletList.WithItems(items).Srender(); err == nil {
		fmt.Fprint(p.out, list)
	}

	if p.info.Explain {
		p.renderFeatures(r.Features)
	}
	fmt.Fprintln(p.out)
}

func (p *PTermPresenter) renderFeatures(f domain.Features) {
	data := pterm.TableData{{"feature", "value"}}
	for _, v := range f.Values() {
		data = append(data, []string{v.Name, fmt.Sprint(v.Value)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return
	}
	fmt.Fprintln(p.out, table)
}

func (p *PTermPresenter) Info(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, pterm.Info.Sprint(msg))
}

func (p *PTermPresenter) Warning(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, pterm.Warning.Sprint(msg))
}

func (p *PTermPresenter) Error(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, pterm.Error.Sprint(msg))
}

func (p *PTermPresenter) Finish(stats RunStats) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if stats.Total <= 1 {
		return
	}

	fmt.Fprintln(p.out, pterm.LightBlue(SeparatorHeavy))
	fmt.Fprintf(p.out, "%s %d checked in %s: %s  %s  %s",
		IconTime,
		stats.Total,
		formatDuration(stats.Duration),
		StyleDanger.Sprintf("%d phishing", stats.Phishing),
		StyleWarning.Sprintf("%d suspicious", stats.Suspicious),
		StyleSafe.Sprintf("%d legitimate", stats.Legitimate),
	)
	if stats.Failed > 0 {
		fmt.Fprintf(p.out, "  %s", StyleSecondary.Sprintf("%d failed", stats.Failed))
	}
	fmt.Fprintln(p.out)
}

func (p *PTermPresenter) Close() error {
	return nil
}
