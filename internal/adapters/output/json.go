// internal/adapters/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"phishscan/internal/core/domain"
	"phishscan/internal/core/ports"
)

// JSONExporter writes items as a JSON array.
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter { return &JSONExporter{} }

func (e *JSONExporter) Name() string { return "json" }

func (e *JSONExporter) Export(w io.Writer, items []domain.BatchItem, opts ports.ExportOptions) error {
	enc := json.NewEncoder(w)
	if opts.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(view(items, opts)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
