// internal/core/ports/exporter.go
package ports

import (
	"io"

	"phishscan/internal/core/domain"
)

// Exporter writes batch results in one output format.
type Exporter interface {
	// Name is the format name the exporter is selected by (json, yaml, table).
	Name() string

	// Export writes items to w.
	Export(w io.Writer, items []domain.BatchItem, opts ExportOptions) error
}

// ExportOptions tunes an export.
type ExportOptions struct {
	// Pretty indents structured formats.
	Pretty bool

	// Explain includes URL parts, features and triggered rules. Without it
	// structured formats carry only the verdict fields.
	Explain bool
}

// DefaultExportOptions returns the options used by the CLI when no flag is set.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{Pretty: true}
}
