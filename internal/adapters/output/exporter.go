// internal/adapters/output/exporter.go
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"phishscan/internal/core/domain"
	"phishscan/internal/core/ports"
)

var exporters = map[string]func() ports.Exporter{
	"json":  func() ports.Exporter { return NewJSONExporter() },
	"yaml":  func() ports.Exporter { return NewYAMLExporter() },
	"table": func() ports.Exporter { return NewTableExporter() },
}

// Formats lists the accepted format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForFormat returns the exporter registered for name ("yml" is an alias of yaml).
func ForFormat(name string) (ports.Exporter, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "yml" {
		name = "yaml"
	}
	factory, ok := exporters[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(Formats(), ", "))
	}
	return factory(), nil
}

// WriteToDir exports items into a new timestamped file under dir and
// returns its path. The directory is created if needed.
func WriteToDir(dir string, exp ports.Exporter, items []domain.BatchItem, opts ports.ExportOptions) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	ext := exp.Name()
	if ext == "table" {
		ext = "txt"
	}
	filename := fmt.Sprintf("phishscan_%s.%s", time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(dir, filename)

	f, err := createFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}

	if err := exp.Export(f, items, opts); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close output file: %w", err)
	}
	return path, nil
}

// createFile opens the export target; tests replace it.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// record is the verdict-only view of a batch item.
type record struct {
	Index     int                 `json:"index" yaml:"index"`
	URL       string              `json:"url" yaml:"url"`
	Result    *domain.ScoreResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error     string              `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind string              `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// view returns what structured exporters encode: the items themselves when
// explaining, verdict-only records otherwise.
func view(items []domain.BatchItem, opts ports.ExportOptions) any {
	if opts.Explain {
		if items == nil {
			return []domain.BatchItem{}
		}
		return items
	}

	out := make([]record, len(items))
	for i, it := range items {
		out[i] = record{Index: it.Index, URL: it.URL, Error: it.Error, ErrorKind: it.ErrorKind}
		if it.Report != nil {
			r := it.Report.ScoreResult
			out[i].Result = &r
		}
	}
	return out
}
