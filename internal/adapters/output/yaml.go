// internal/adapters/output/yaml.go
package output

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"phishscan/internal/core/domain"
	"phishscan/internal/core/ports"
)

// YAMLExporter writes items as a YAML sequence. Pretty is ignored.
type YAMLExporter struct{}

func NewYAMLExporter() *YAMLExporter { return &YAMLExporter{} }

func (e *YAMLExporter) Name() string { return "yaml" }

func (e *YAMLExporter) Export(w io.Writer, items []domain.BatchItem, opts ports.ExportOptions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view(items, opts)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}
