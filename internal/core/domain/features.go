// internal/core/domain/features.go
package domain

// Feature names, in the order they are reported.
const (
	FeatureURLLength            = "url_length"
	FeatureLongURL              = "long_url"
	FeatureDotsInDomain         = "dots_in_domain"
	FeatureHasIP                = "has_ip"
	FeatureHasAt                = "has_at"
	FeatureDoubleSlashInPath    = "double_slash_in_path"
	FeatureSubdomainCount       = "subdomain_count"
	FeatureManySubdomains       = "many_subdomains"
	FeatureHasSuspiciousKeyword = "has_suspicious_keyword"
	FeatureHasHyphen            = "has_hyphen"
	FeatureMultipleHyphens      = "multiple_hyphens"
	FeatureIsHTTPS              = "is_https"
	FeatureSuspiciousTLD        = "suspicious_tld"
	FeatureBrandInSubdomain     = "brand_in_subdomain"
	FeatureIsShortened          = "is_shortened"
	FeatureHasPort              = "has_port"
	FeatureManySpecialChars     = "many_special_chars"
	FeatureHasRedirect          = "has_redirect"
	FeatureHasHexChars          = "has_hex_chars"
)

// Features is the fixed signal set derived from one URL.
// It is a plain value: copying it is the only way to "modify" it.
type Features struct {
	URLLength            int  `json:"url_length" yaml:"url_length"`
	LongURL              bool `json:"long_url" yaml:"long_url"`
	DotsInDomain         int  `json:"dots_in_domain" yaml:"dots_in_domain"`
	HasIP                bool `json:"has_ip" yaml:"has_ip"`
	HasAt                bool `json:"has_at" yaml:"has_at"`
	DoubleSlashInPath    bool `json:"double_slash_in_path" yaml:"double_slash_in_path"`
	SubdomainCount       int  `json:"subdomain_count" yaml:"subdomain_count"`
	ManySubdomains       bool `json:"many_subdomains" yaml:"many_subdomains"`
	HasSuspiciousKeyword bool `json:"has_suspicious_keyword" yaml:"has_suspicious_keyword"`
	HasHyphen            bool `json:"has_hyphen" yaml:"has_hyphen"`
	MultipleHyphens      bool `json:"multiple_hyphens" yaml:"multiple_hyphens"`
	IsHTTPS              bool `json:"is_https" yaml:"is_https"`
	SuspiciousTLD        bool `json:"suspicious_tld" yaml:"suspicious_tld"`
	BrandInSubdomain     bool `json:"brand_in_subdomain" yaml:"brand_in_subdomain"`
	IsShortened          bool `json:"is_shortened" yaml:"is_shortened"`
	HasPort              bool `json:"has_port" yaml:"has_port"`
	ManySpecialChars     bool `json:"many_special_chars" yaml:"many_special_chars"`
	HasRedirect          bool `json:"has_redirect" yaml:"has_redirect"`
	HasHexChars          bool `json:"has_hex_chars" yaml:"has_hex_chars"`
}

// FeatureValue is one named entry of a Features value.
// Value holds either a bool or an int.
type FeatureValue struct {
	Name  string
	Value any
}

// Values lists every feature in reporting order.
func (f Features) Values() []FeatureValue {
	return []FeatureValue{
		{FeatureURLLength, f.URLLength},
		{FeatureLongURL, f.LongURL},
		{FeatureDotsInDomain, f.DotsInDomain},
		{FeatureHasIP, f.HasIP},
		{FeatureHasAt, f.HasAt},
		{FeatureDoubleSlashInPath, f.DoubleSlashInPath},
		{FeatureSubdomainCount, f.SubdomainCount},
		{FeatureManySubdomains, f.ManySubdomains},
		{FeatureHasSuspiciousKeyword, f.HasSuspiciousKeyword},
		{FeatureHasHyphen, f.HasHyphen},
		{FeatureMultipleHyphens, f.MultipleHyphens},
		{FeatureIsHTTPS, f.IsHTTPS},
		{FeatureSuspiciousTLD, f.SuspiciousTLD},
		{FeatureBrandInSubdomain, f.BrandInSubdomain},
		{FeatureIsShortened, f.IsShortened},
		{FeatureHasPort, f.HasPort},
		{FeatureManySpecialChars, f.ManySpecialChars},
		{FeatureHasRedirect, f.HasRedirect},
		{FeatureHasHexChars, f.HasHexChars},
	}
}
