// internal/core/usecases/scorer.go
package usecases

import "phishscan/internal/core/domain"

// Rule is one row of the scoring table.
type Rule struct {
	// Name identifies the rule; it is the feature name, or a derived name
	// for rules that test a condition on a numeric feature.
	Name    string
	Tier    domain.Tier
	Weight  int
	Message string

	// Triggered reports whether the rule fires for a feature set.
	Triggered func(f domain.Features) bool
}

// Derived rule names for conditions that are not a plain boolean feature.
const (
	RuleNotHTTPS          = "not_https"
	RuleTooManyDotsDomain = "too_many_dots_in_domain"
)

// tooManyDots is the dot count above which a domain is penalised.
const tooManyDots = 4

// defaultRules is evaluated top to bottom. The order defines the order of
// risk factors in every result and must not change.
var defaultRules = []Rule{
	// Critical
	{domain.FeatureHasIP, domain.TierCritical, 5, "Uses IP address instead of domain name",
		func(f domain.Features) bool { return f.HasIP }},
	{domain.FeatureHasAt, domain.TierCritical, 5, "Contains @ symbol (URL obfuscation)",
		func(f domain.Features) bool { return f.HasAt }},

	// High (brand / TLD)
	{domain.FeatureBrandInSubdomain, domain.TierHigh, 4, "Brand name in subdomain (possible impersonation)",
		func(f domain.Features) bool { return f.BrandInSubdomain }},
	{domain.FeatureSuspiciousTLD, domain.TierHigh, 4, "Suspicious top-level domain",
		func(f domain.Features) bool { return f.SuspiciousTLD }},

	// High
	{domain.FeatureLongURL, domain.TierHigh, 3, "Unusually long URL",
		func(f domain.Features) bool { return f.LongURL }},
	{domain.FeatureManySubdomains, domain.TierHigh, 3, "Too many subdomains",
		func(f domain.Features) bool { return f.ManySubdomains }},
	{domain.FeatureDoubleSlashInPath, domain.TierHigh, 3, "Double slash in path",
		func(f domain.Features) bool { return f.DoubleSlashInPath }},
	{domain.FeatureHasSuspiciousKeyword, domain.TierHigh, 3, "Contains suspicious keywords",
		func(f domain.Features) bool { return f.HasSuspiciousKeyword }},
	{domain.FeatureIsShortened, domain.TierHigh, 3, "URL shortening service detected",
		func(f domain.Features) bool { return f.IsShortened }},

	// Medium
	{domain.FeatureMultipleHyphens, domain.TierMedium, 2, "Multiple hyphens in domain",
		func(f domain.Features) bool { return f.MultipleHyphens }},
	{domain.FeatureHasPort, domain.TierMedium, 2, "Non-standard port number",
		func(f domain.Features) bool { return f.HasPort }},
	{domain.FeatureManySpecialChars, domain.TierMedium, 2, "Excessive special characters",
		func(f domain.Features) bool { return f.ManySpecialChars }},
	{domain.FeatureHasRedirect, domain.TierMedium, 2, "Contains redirect patterns",
		func(f domain.Features) bool { return f.HasRedirect }},
	{RuleTooManyDotsDomain, domain.TierMedium, 2, "Too many dots in domain",
		func(f domain.Features) bool { return f.DotsInDomain > tooManyDots }},

	// Low
	{domain.FeatureHasHexChars, domain.TierLow, 1, "Contains encoded characters",
		func(f domain.Features) bool { return f.HasHexChars }},
	{domain.FeatureHasHyphen, domain.TierLow, 1, "Contains hyphen in domain",
		func(f domain.Features) bool { return f.HasHyphen }},
	{RuleNotHTTPS, domain.TierLow, 1, "Not using HTTPS",
		func(f domain.Features) bool { return !f.IsHTTPS }},
}

// DefaultRules returns a copy of the scoring table in evaluation order.
func DefaultRules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// TotalWeight is the score reached when every rule fires.
func TotalWeight(rules []Rule) int {
	total := 0
	for _, r := range rules {
		total += r.Weight
	}
	return total
}

// Scoring is the outcome of evaluating the rule table.
type Scoring struct {
	Result    domain.ScoreResult
	Triggered []string // rule names, in evaluation order
}

// Scorer applies the rule table to a feature set. It holds no mutable
// state and is safe for concurrent use.
type Scorer struct {
	rules []Rule
}

// NewScorer creates a Scorer over the default rule table.
func NewScorer() *Scorer {
	return &Scorer{rules: defaultRules}
}

// Rules returns a copy of the rules the scorer evaluates.
func (s *Scorer) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Score classifies a feature set. It never fails.
func (s *Scorer) Score(f domain.Features) domain.ScoreResult {
	return s.Evaluate(f).Result
}

// Evaluate is Score plus the names of the rules that fired.
func (s *Scorer) Evaluate(f domain.Features) Scoring {
	score := 0
	factors := make([]string, 0, len(s.rules))
	triggered := make([]string, 0, len(s.rules))

	for _, r := range s.rules {
		if !r.Triggered(f) {
			continue
		}
		score += r.Weight
		factors = append(factors, r.Message)
		triggered = append(triggered, r.Name)
	}

	return Scoring{
		Result:    domain.NewScoreResult(score, factors),
		Triggered: triggered,
	}
}
