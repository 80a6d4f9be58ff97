// internal/adapters/output/table.go
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"phishscan/internal/core/domain"
	"phishscan/internal/core/ports"
)

// TableExporter writes a plain text summary, one row per URL.
type TableExporter struct{}

func NewTableExporter() *TableExporter { return &TableExporter{} }

func (e *TableExporter) Name() string { return "table" }

func (e *TableExporter) Export(out io.Writer, items []domain.BatchItem, opts ports.ExportOptions) error {
	w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	fmt.Fprintf(w, "\n=== phishscan results ===\n")
	fmt.Fprintf(w, "URLs:\t%d\n\n", len(items))

	if len(items) == 0 {
		fmt.Fprintln(w, "No URLs checked.")
		return flush(w)
	}

	fmt.Fprintln(w, "#\tPREDICTION\tSCORE\tCONFIDENCE\tURL")
	fmt.Fprintln(w, "-\t----------\t-----\t----------\t---")

	counts := make(map[string]int)
	for _, it := range items {
		if it.Report == nil {
			counts["error"]++
			fmt.Fprintf(w, "%d\t%s\t-\t-\t%s\n", it.Index+1, "error", it.URL)
			continue
		}
		r := it.Report
		counts[string(r.Classification)]++
		fmt.Fprintf(w, "%d\t%s\t%d/%d\t%s\t%s\n",
			it.Index+1,
			r.Classification,
			r.RiskScore,
			r.MaxScore,
			r.Confidence,
			it.URL,
		)
	}

	if err := flush(w); err != nil {
		return err
	}

	// Details
	for _, it := range items {
		if it.Report == nil {
			fmt.Fprintf(out, "\n%d. %s\n   error: %s\n", it.Index+1, it.URL, it.Error)
			continue
		}
		if !opts.Explain {
			continue
		}
		fmt.Fprintf(out, "\n%d. %s\n", it.Index+1, it.URL)
		for _, f := range it.Report.RiskFactors {
			fmt.Fprintf(out, "   - %s\n", f)
		}
		if len(it.Report.TriggeredRules) > 0 {
			fmt.Fprintf(out, "   rules: %s\n", strings.Join(it.Report.TriggeredRules, ", "))
		}
		if it.Report.RegisteredDomain != "" {
			fmt.Fprintf(out, "   registered domain: %s\n", it.Report.RegisteredDomain)
		}
	}

	fmt.Fprintln(out, "\nSummary:")
	for _, key := range []string{"phishing", "suspicious", "legitimate", "error"} {
		if counts[key] > 0 {
			fmt.Fprintf(out, "  - %s: %d\n", key, counts[key])
		}
	}
	fmt.Fprintln(out)
	return nil
}

func flush(w *tabwriter.Writer) error {
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush table: %w", err)
	}
	return nil
}
