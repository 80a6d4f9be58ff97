// internal/cli/check.go
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"phishscan/internal/adapters/output"
	"phishscan/internal/core/domain"
	"phishscan/internal/core/ports"
	"phishscan/internal/core/usecases"
	"phishscan/internal/platform/config"
	perrors "phishscan/internal/platform/errors"
	"phishscan/internal/platform/ui"
)

const (
	flagFile   = "file"
	flagBanner = "banner"
	flagFailOn = "fail-on"
)

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [url...]",
		Short: "Classify one or more URLs",
		Long: `Classify URLs given as arguments, read from --file (one per line,
'#' starts a comment) or piped on stdin.

Results go to stdout in the --format of choice, or to a timestamped file
under --output-dir. Progress is shown on stderr according to --ui.
The exit status is non-zero when a URL could not be classified, or when a
verdict reaches --fail-on.`,
		Example: `  phishscan check https://www.google.com http://192.168.1.1/login
  phishscan check -f json --explain https://paypal.com.verify-account.tk/login
  phishscan check --file urls.txt --workers 16 --fail-on phishing
  cat urls.txt | phishscan check -f yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args)
		},
	}

	config.BindCheckFlags(cmd.Flags())
	cmd.Flags().StringP(flagFile, "i", "", "read URLs from this file (\"-\" for stdin)")
	cmd.Flags().Bool(flagBanner, false, "print the banner before the run")
	cmd.Flags().String(flagFailOn, "none", "exit non-zero on a verdict at or above: none, suspicious, phishing")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string) error {
	cfg := a.cfg.Check
	fs := cmd.Flags()
	file, _ := fs.GetString(flagFile)
	banner, _ := fs.GetBool(flagBanner)
	failOnName, _ := fs.GetString(flagFailOn)

	failOn, err := parseFailOn(failOnName)
	if err != nil {
		return err
	}

	exporter, err := output.ForFormat(cfg.Format)
	if err != nil {
		return err
	}

	urls, err := collectURLs(args, file, cmd.InOrStdin())
	if err != nil {
		return err
	}
	if len(urls) == 0 {
		return fmt.Errorf("no URLs given: pass them as arguments, with --file or on stdin")
	}

	batch, err := usecases.NewBatchService(
		usecases.NewClassifyService(a.logger),
		usecases.BatchConfig{Workers: cfg.Workers, Scheduler: cfg.Scheduler},
		a.logger,
	)
	if err != nil {
		return err
	}

	p := newPresenter(cfg, cmd.ErrOrStderr())
	defer p.Close()

	if banner {
		p.Banner(a.build.Version)
	}
	p.Start(ui.RunInfo{
		URLs:      len(urls),
		Workers:   cfg.Workers,
		Scheduler: cfg.Scheduler,
		Explain:   cfg.Explain,
	})

	start := time.Now()
	items := batch.ClassifyAll(cmd.Context(), urls)
	for _, item := range items {
		p.Result(item)
	}
	stats := ui.Tally(items, time.Since(start))
	p.Finish(stats)

	opts := ports.ExportOptions{Pretty: cfg.Pretty, Explain: cfg.Explain}
	if cfg.OutputDir != "" {
		path, err := output.WriteToDir(cfg.OutputDir, exporter, items, opts)
		if err != nil {
			p.Error(err.Error())
			return err
		}
		p.Info("results written to " + path)
	} else if err := exporter.Export(cmd.OutOrStdout(), items, opts); err != nil {
		return perrors.Wrapf(err, "export %s", exporter.Name())
	}

	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d URLs could not be classified", stats.Failed, stats.Total)
	}
	if n := countAtOrAbove(items, failOn); n > 0 {
		return fmt.Errorf("%d of %d URLs classified %s or worse", n, stats.Total, failOn)
	}
	return nil
}

// newPresenter picks the presenter for w. Pretty output needs a terminal;
// anything else falls back to raw lines without color.
func newPresenter(cfg config.Check, w io.Writer) ui.Presenter {
	mode := ui.ParseMode(cfg.UI)
	tty := isTerminal(w)

	if !cfg.Color || !tty {
		ui.DisableColor()
	}
	if mode == ui.ModePretty && !tty {
		mode = ui.ModeRaw
	}
	return ui.New(mode, w)
}

// isTerminal reports whether v is an *os.File attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// collectURLs gathers args, then the lines of file. With neither, stdin is
// read when it is not a terminal.
func collectURLs(args []string, file string, stdin io.Reader) ([]string, error) {
	urls := append([]string{}, args...)

	switch {
	case file == "-":
		lines, err := readLines(stdin)
		if err != nil {
			return nil, perrors.Wrap(err, "read stdin")
		}
		urls = append(urls, lines...)

	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		lines, err := readLines(f)
		if err != nil {
			return nil, perrors.Wrapf(err, "read %s", file)
		}
		urls = append(urls, lines...)

	case len(args) == 0 && stdin != nil && !isTerminal(stdin):
		lines, err := readLines(stdin)
		if err != nil {
			return nil, perrors.Wrap(err, "read stdin")
		}
		urls = append(urls, lines...)
	}

	return urls, nil
}

// readLines returns the non-blank lines of r, trimmed, skipping '#' comments.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}

// parseFailOn maps a --fail-on value onto a classification. "none" gives "".
func parseFailOn(s string) (domain.Classification, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return "", nil
	case string(domain.ClassificationSuspicious):
		return domain.ClassificationSuspicious, nil
	case string(domain.ClassificationPhishing):
		return domain.ClassificationPhishing, nil
	default:
		return "", fmt.Errorf("--%s: unknown value %q (want none, suspicious or phishing)", flagFailOn, s)
	}
}

func countAtOrAbove(items []domain.BatchItem, threshold domain.Classification) int {
	if threshold == "" {
		return 0
	}
	rank := map[domain.Classification]int{
		domain.ClassificationLegitimate: 0,
		domain.ClassificationSuspicious: 1,
		domain.ClassificationPhishing:   2,
	}

	n := 0
	for _, it := range items {
		if it.OK() && rank[it.Report.Classification] >= rank[threshold] {
			n++
		}
	}
	return n
}
