// internal/core/usecases/extractor.go
package usecases

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"phishscan/internal/core/domain"
)

// Thresholds used by the extractor.
const (
	longURLLength       = 54
	manySubdomainsCount = 3
	manySpecialChars    = 5
)

// Static signal lists. Read-only after package initialisation.
var (
	suspiciousKeywords = []string{
		"login", "verify", "account", "update", "secure", "banking",
		"confirm", "signin", "ebayisapi", "webscr", "paypal", "password",
		"credential", "suspended", "locked", "unusual", "click", "urgent",
	}

	suspiciousTLDs = []string{
		".tk", ".ml", ".ga", ".cf", ".gq", ".xyz", ".top", ".work", ".click", ".link",
	}

	impersonatedBrands = []string{
		"paypal", "amazon", "google", "microsoft", "apple", "facebook", "netflix",
		"instagram", "twitter", "linkedin", "ebay", "bank", "wells", "chase", "citi",
	}

	shortenerServices = []string{
		"bit.ly", "tinyurl", "goo.gl", "t.co", "ow.ly", "is.gd", "buff.ly",
	}

	redirectMarkers = []string{"redirect", "redir"}

	specialChars = []string{"-", "_", "?", "=", "&"}

	// Anchored at the start only, so "1.2.3.4.evil.com" and "1.2.3.4:80" match too.
	dottedQuadPattern = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+`)

	percentEncodedPattern = regexp.MustCompile(`%[0-9a-f]{2}`)
)

// Extractor turns a raw URL into its feature set. It holds no state and is
// safe for concurrent use.
type Extractor struct{}

// NewExtractor creates an Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract decomposes rawURL and computes every feature.
// The only error is one of kind InvalidURL; scheme is not validated here.
func (e *Extractor) Extract(rawURL string) (domain.Features, error) {
	parts, err := domain.ParseURL(rawURL)
	if err != nil {
		return domain.Features{}, err
	}
	return e.FromParts(parts), nil
}

// FromParts computes the features of an already decomposed URL.
func (e *Extractor) FromParts(p domain.ParsedURL) domain.Features {
	urlLength := utf8.RuneCountInString(p.Raw)
	dots := strings.Count(p.Domain, ".")
	hyphens := strings.Count(p.Domain, "-")

	subdomains := 0
	if dots > 0 {
		subdomains = dots - 1
	}

	return domain.Features{
		URLLength:            urlLength,
		LongURL:              urlLength > longURLLength,
		DotsInDomain:         dots,
		HasIP:                dottedQuadPattern.MatchString(p.Domain),
		HasAt:                strings.Contains(p.Raw, "@"),
		DoubleSlashInPath:    strings.Contains(p.Path, "//"),
		SubdomainCount:       subdomains,
		ManySubdomains:       subdomains > manySubdomainsCount,
		HasSuspiciousKeyword: containsAny(p.Full, suspiciousKeywords),
		HasHyphen:            hyphens > 0,
		MultipleHyphens:      hyphens > 1,
		IsHTTPS:              p.Scheme == "https",
		SuspiciousTLD:        hasAnySuffix(p.Domain, suspiciousTLDs),
		BrandInSubdomain:     brandInFirstLabel(p.Domain),
		IsShortened:          containsAny(p.Domain, shortenerServices),
		HasPort:              strings.Contains(p.Domain, ":") && !strings.HasPrefix(p.Domain, "["),
		ManySpecialChars:     countAll(p.Raw, specialChars) > manySpecialChars,
		HasRedirect:          containsAny(p.Full, redirectMarkers),
		HasHexChars:          percentEncodedPattern.MatchString(p.Full),
	}
}

// brandInFirstLabel checks the label before the first dot. Single-label
// domains never match. The registrable domain itself is not excluded, so
// "paypal.com" matches as well.
func brandInFirstLabel(d string) bool {
	first, _, found := strings.Cut(d, ".")
	if !found {
		return false
	}
	return containsAny(first, impersonatedBrands)
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suf := range suffixes {
		if strings.HasSuffix(s, suf) {
			return true
		}
	}
	return false
}

func countAll(s string, needles []string) int {
	n := 0
	for _, needle := range needles {
		n += strings.Count(s, needle)
	}
	return n
}
