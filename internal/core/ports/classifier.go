// internal/core/ports/classifier.go
package ports

import (
	"context"

	"phishscan/internal/core/domain"
)

// Classifier scores a single URL.
type Classifier interface {
	// Classify returns the explained verdict for rawURL, or an error of
	// kind InvalidURL when the URL cannot be decomposed.
	Classify(ctx context.Context, rawURL string) (*domain.Report, error)
}
