// internal/platform/validator/validator.go
package validator

import (
	"net"
	"regexp"
	"strings"

	"golang.org/x/net/publicsuffix"

	perrors "phishscan/internal/platform/errors"
)

// Submission validators

// AcceptedPrefixes are the URL prefixes a submission must start with.
// The comparison is case-sensitive.
var AcceptedPrefixes = []string{"http://", "https://"}

// ValidateSubmission performs the caller-side checks that run before the
// engine: the URL must be present and use an http(s) prefix.
func ValidateSubmission(raw string) error {
	if raw == "" {
		return perrors.NewKind(perrors.KindMissingInput)
	}
	if !HasWebPrefix(raw) {
		return perrors.NewKind(perrors.KindBadScheme)
	}
	return nil
}

// HasWebPrefix reports whether raw starts with one of AcceptedPrefixes.
func HasWebPrefix(raw string) bool {
	for _, p := range AcceptedPrefixes {
		if strings.HasPrefix(raw, p) {
			return true
		}
	}
	return false
}

// Domain validators

var domainRegex = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)

// IsDomain reports whether s is a syntactically valid host name (not an IP).
func IsDomain(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	if !domainRegex.MatchString(s) {
		return false
	}
	return !IsIP(s)
}

// NormalizeDomain lower-cases s and strips surrounding space and a trailing dot.
func NormalizeDomain(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.TrimSuffix(s, ".")
}

// RegistrableDomain returns the eTLD+1 and the public suffix of host using
// the public suffix list compiled into x/net. No network access is involved.
// IPs, single labels and bare suffixes yield empty strings.
func RegistrableDomain(host string) (etldPlusOne, suffix string) {
	host = NormalizeDomain(host)
	if !IsDomain(host) {
		return "", ""
	}

	suffix, _ = publicsuffix.PublicSuffix(host)
	etldPlusOne, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return "", suffix
	}
	return etldPlusOne, suffix
}

// Network validators

// IsIP reports whether s is a valid IPv4 or IPv6 address.
func IsIP(s string) bool {
	return net.ParseIP(s) != nil
}
