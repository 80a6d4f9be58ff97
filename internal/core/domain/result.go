// internal/core/domain/result.go
package domain

const (
	// MaxScore is the ceiling reported with every result.
	MaxScore = 35

	// PhishingThreshold is the lowest score classified as phishing.
	PhishingThreshold = 10

	// SuspiciousThreshold is the lowest score classified as suspicious.
	SuspiciousThreshold = 5

	// NoRedFlags replaces an empty risk factor list on legitimate results.
	NoRedFlags = "No major red flags detected"
)

// ScoreResult is the verdict for one URL. The JSON field names are the
// ones the HTTP API answers with.
type ScoreResult struct {
	Classification Classification `json:"prediction" yaml:"prediction"`
	RiskScore      int            `json:"risk_score" yaml:"risk_score"`
	MaxScore       int            `json:"max_score" yaml:"max_score"`
	Message        string         `json:"message" yaml:"message"`
	Confidence     Confidence     `json:"confidence" yaml:"confidence"`
	RiskFactors    []string       `json:"risk_factors" yaml:"risk_factors"`
}

// ClassificationFor maps a risk score onto the three verdicts.
func ClassificationFor(score int) Classification {
	switch {
	case score >= PhishingThreshold:
		return ClassificationPhishing
	case score >= SuspiciousThreshold:
		return ClassificationSuspicious
	default:
		return ClassificationLegitimate
	}
}

// NewScoreResult builds the result for a score and the risk factors that produced it.
// factors is copied; a legitimate result without factors gets the NoRedFlags sentinel.
func NewScoreResult(score int, factors []string) ScoreResult {
	c := ClassificationFor(score)

	out := make([]string, len(factors))
	copy(out, factors)
	if c == ClassificationLegitimate && len(out) == 0 {
		out = []string{NoRedFlags}
	}

	return ScoreResult{
		Classification: c,
		RiskScore:      score,
		MaxScore:       MaxScore,
		Message:        c.Message(),
		Confidence:     c.Confidence(),
		RiskFactors:    out,
	}
}

// Report is a ScoreResult plus the data that explains it.
// Nothing outside the embedded ScoreResult contributes to the score.
type Report struct {
	URL string `json:"url" yaml:"url"`

	ScoreResult `yaml:",inline"`

	TriggeredRules   []string  `json:"triggered_rules" yaml:"triggered_rules"`
	Parts            ParsedURL `json:"parts" yaml:"parts"`
	Features         Features  `json:"features" yaml:"features"`
	RegisteredDomain string    `json:"registered_domain,omitempty" yaml:"registered_domain,omitempty"`
	PublicSuffix     string    `json:"public_suffix,omitempty" yaml:"public_suffix,omitempty"`
}
