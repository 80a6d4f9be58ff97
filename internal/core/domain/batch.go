// internal/core/domain/batch.go
package domain

import perrors "phishscan/internal/platform/errors"

// BatchItem is the outcome for one URL of a batch. Exactly one of Report
// and Err is set.
type BatchItem struct {
	Index  int     `json:"index" yaml:"index"`
	URL    string  `json:"url" yaml:"url"`
	Report *Report `json:"report,omitempty" yaml:"report,omitempty"`

	Err       error  `json:"-" yaml:"-"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorKind string `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// NewBatchItem builds the item for a URL from a classification outcome.
func NewBatchItem(index int, url string, report *Report, err error) BatchItem {
	item := BatchItem{Index: index, URL: url}
	if err != nil {
		item.SetError(err)
		return item
	}
	item.Report = report
	return item
}

// SetError records err on the item and drops any report.
func (b *BatchItem) SetError(err error) {
	b.Report = nil
	b.Err = err
	b.Error = perrors.UserMessage(err)
	b.ErrorKind = perrors.KindOf(err).String()
}

// OK reports whether the URL was classified.
func (b BatchItem) OK() bool {
	return b.Err == nil && b.Report != nil
}
