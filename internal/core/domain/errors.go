// internal/core/domain/errors.go
package domain

import perrors "phishscan/internal/platform/errors"

// Domain errors. They are the platform sentinels so that errors.Is works
// the same on both sides of the package boundary.
var (
	// ErrInvalidURL is returned when a URL cannot be decomposed.
	ErrInvalidURL = perrors.ErrInvalidURL

	// ErrMissingInput is returned when no URL was submitted.
	ErrMissingInput = perrors.ErrMissingInput

	// ErrBadScheme is returned when a submission is not http(s).
	ErrBadScheme = perrors.ErrBadScheme
)
