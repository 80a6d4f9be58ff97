package testutil

// Fixture data for tests (primitive values only, no domain dependencies)

// FixtureLegitimateURLs score below the suspicious threshold.
var FixtureLegitimateURLs = []string{
	"https://www.google.com",
	"https://example.com/docs/index.html",
	"https://github.com/golang/go",
	"https://news.ycombinator.com/item?id=1",
}

// FixturePhishingURLs score at or above the phishing threshold.
var FixturePhishingURLs = []string{
	"https://paypal.com.verify-account.tk/login?redirect=1",
	"http://192.168.1.1@evil.example.com/secure-login",
	"http://amazon-account-update.secure-login.xyz/verify",
}

// FixtureMalformedURLs cannot be decomposed into scheme and authority.
var FixtureMalformedURLs = []string{
	"",
	"not a url",
	"www.example.com/path",
	"http://",
	"http:opaque",
	"http://[::1",
	"http://::1]/",
	"//example.com/no-scheme",
	"1http://example.com/",
}

// FixtureUnusualURLs have an authority but characters or escapes a strict
// parser rejects. They still decompose and score.
var FixtureUnusualURLs = []string{
	"http://example.com/%zz",
	"http://example.com/login%",
	"http://example.com:abc/login",
	"http://exa mple.com/",
	"http://ex%41mple.com/",
	"http://user name@host.com/",
	"http://example.com/\x7f",
}

// FixtureBadSchemeURLs are rejected by submission validation.
var FixtureBadSchemeURLs = []string{
	"ftp://example.com/file",
	"example.com",
	"HTTP://EXAMPLE.COM",
	"javascript:alert(1)",
}
