// internal/core/domain/enums.go
package domain

// Classification is the verdict for a URL.
type Classification string

const (
	ClassificationLegitimate Classification = "legitimate"
	ClassificationSuspicious Classification = "suspicious"
	ClassificationPhishing   Classification = "phishing"
)

// IsValid reports whether the classification is one of the known values.
func (c Classification) IsValid() bool {
	switch c {
	case ClassificationLegitimate, ClassificationSuspicious, ClassificationPhishing:
		return true
	default:
		return false
	}
}

// String returns the string representation of the classification.
func (c Classification) String() string {
	return string(c)
}

// Confidence returns the risk band reported alongside the classification.
func (c Classification) Confidence() Confidence {
	switch c {
	case ClassificationPhishing:
		return ConfidenceHighRisk
	case ClassificationSuspicious:
		return ConfidenceMediumRisk
	default:
		return ConfidenceLowRisk
	}
}

// Message returns the fixed advisory shown to the user.
func (c Classification) Message() string {
	switch c {
	case ClassificationPhishing:
		return "This URL appears to be a PHISHING link. Do not click or enter any information!"
	case ClassificationSuspicious:
		return "This URL looks SUSPICIOUS. Proceed with extreme caution!"
	default:
		return "This URL appears to be relatively safe, but always verify the source."
	}
}

// Confidence is the human-readable risk band.
type Confidence string

const (
	ConfidenceLowRisk    Confidence = "Low Risk"
	ConfidenceMediumRisk Confidence = "Medium Risk"
	ConfidenceHighRisk   Confidence = "High Risk"
)

// String returns the string representation of the confidence band.
func (c Confidence) String() string {
	return string(c)
}

// Tier groups scoring rules by severity.
type Tier string

const (
	TierCritical Tier = "critical"
	TierHigh     Tier = "high"
	TierMedium   Tier = "medium"
	TierLow      Tier = "low"
)

// IsValid reports whether the tier is one of the known values.
func (t Tier) IsValid() bool {
	switch t {
	case TierCritical, TierHigh, TierMedium, TierLow:
		return true
	default:
		return false
	}
}

// String returns the string representation of the tier.
func (t Tier) String() string {
	return string(t)
}
