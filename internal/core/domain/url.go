// internal/core/domain/url.go
package domain

import (
	"strings"

	perrors "phishscan/internal/platform/errors"
)

// ParsedURL is a submitted URL decomposed into the parts the features read.
// Every field except Raw is lower-cased.
type ParsedURL struct {
	// Raw is the URL exactly as submitted.
	Raw string `json:"raw" yaml:"raw"`

	// Scheme, e.g. "https".
	Scheme string `json:"scheme" yaml:"scheme"`

	// Domain is the whole authority: user-info, host and port when present.
	Domain string `json:"domain" yaml:"domain"`

	// Host is the bare host name without user-info, port or IPv6 brackets.
	Host string `json:"host" yaml:"host"`

	// Path as written, without ";params"; "%2f" is not folded into "/".
	Path string `json:"path" yaml:"path"`

	// Full is Raw lower-cased.
	Full string `json:"full" yaml:"full"`
}

var (
	errMissingScheme    = perrors.New("missing scheme")
	errMissingAuthority = perrors.New("missing authority component")
	errUnbalancedIPv6   = perrors.New("unbalanced brackets in IPv6 authority")
)

// ParseURL splits raw into scheme://authority/path;params?query#fragment.
// It only splits: escapes, ports and characters are not validated, so an
// unusual URL still yields its parts. The error, of kind InvalidURL, is
// reserved for a missing scheme or authority and for unbalanced IPv6
// brackets.
func ParseURL(raw string) (ParsedURL, error) {
	rest := strings.Map(dropTabNewline, strings.TrimLeft(raw, c0OrSpace))

	scheme, rest, ok := splitScheme(rest)
	if !ok {
		return ParsedURL{}, perrors.WithCause(perrors.KindInvalidURL, errMissingScheme)
	}

	if !strings.HasPrefix(rest, "//") {
		return ParsedURL{}, perrors.WithCause(perrors.KindInvalidURL, errMissingAuthority)
	}
	rest = rest[2:]

	authority := rest
	if end := strings.IndexAny(rest, "/?#"); end >= 0 {
		authority, rest = rest[:end], rest[end:]
	} else {
		rest = ""
	}
	if authority == "" {
		return ParsedURL{}, perrors.WithCause(perrors.KindInvalidURL, errMissingAuthority)
	}
	if strings.Contains(authority, "[") != strings.Contains(authority, "]") {
		return ParsedURL{}, perrors.WithCause(perrors.KindInvalidURL, errUnbalancedIPv6)
	}

	path := rest
	if end := strings.IndexAny(path, "?#"); end >= 0 {
		path = path[:end]
	}

	return ParsedURL{
		Raw:    raw,
		Scheme: strings.ToLower(scheme),
		Domain: strings.ToLower(authority),
		Host:   strings.ToLower(hostOf(authority)),
		Path:   strings.ToLower(stripParams(path)),
		Full:   strings.ToLower(raw),
	}, nil
}

// c0OrSpace is trimmed from the front of a URL before splitting.
const c0OrSpace = "\x00\x01\x02\x03\x04\x05\x06\x07\x08\x09\x0a\x0b\x0c\x0d\x0e\x0f" +
	"\x10\x11\x12\x13\x14\x15\x16\x17\x18\x19\x1a\x1b\x1c\x1d\x1e\x1f "

func dropTabNewline(r rune) rune {
	switch r {
	case '\t', '\r', '\n':
		return -1
	}
	return r
}

// splitScheme cuts s at the first ':'. The scheme must start with an ASCII
// letter and contain only letters, digits, '+', '-' and '.'.
func splitScheme(s string) (scheme, rest string, ok bool) {
	i := strings.IndexByte(s, ':')
	if i <= 0 || !isASCIILetter(s[0]) {
		return "", s, false
	}
	for j := 1; j < i; j++ {
		c := s[j]
		if !isASCIILetter(c) && !('0' <= c && c <= '9') && c != '+' && c != '-' && c != '.' {
			return "", s, false
		}
	}
	return s[:i], s[i+1:], true
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// hostOf drops user-info, port and IPv6 brackets from an authority.
func hostOf(authority string) string {
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		authority = authority[at+1:]
	}
	if strings.HasPrefix(authority, "[") {
		if end := strings.IndexByte(authority, ']'); end >= 0 {
			return authority[1:end]
		}
		return authority[1:]
	}
	host, _, _ := strings.Cut(authority, ":")
	return host
}

// stripParams removes ";params" from the last path segment.
func stripParams(path string) string {
	from := 0
	if slash := strings.LastIndexByte(path, '/'); slash >= 0 {
		from = slash
	}
	if semi := strings.IndexByte(path[from:], ';'); semi >= 0 {
		return path[:from+semi]
	}
	return path
}
