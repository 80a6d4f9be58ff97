// internal/platform/ui/noop_presenter.go
package ui

import "phishscan/internal/core/domain"

// NoopPresenter discards everything.
type NoopPresenter struct{}

func NewNoopPresenter() *NoopPresenter {
	return &NoopPresenter{}
}

func (n *NoopPresenter) Banner(version string)        {}
func (n *NoopPresenter) Start(info RunInfo)           {}
func (n *NoopPresenter) Result(item domain.BatchItem) {}
func (n *NoopPresenter) Info(msg string)              {}
func (n *NoopPresenter) Warning(msg string)           {}
func (n *NoopPresenter) Error(msg string)             {}
func (n *NoopPresenter) Finish(stats RunStats)        {}
func (n *NoopPresenter) Close() error                 { return nil }
