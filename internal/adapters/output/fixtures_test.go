// internal/adapters/output/fixtures_test.go
package output

import (
	"phishscan/internal/core/domain"
	perrors "phishscan/internal/platform/errors"
)

func sampleItems() []domain.BatchItem {
	phish := &domain.Report{
		URL: "https://paypal.com.verify-account.tk/login",
		ScoreResult: domain.NewScoreResult(11, []string{
			"Brand name in subdomain (possible impersonation)",
			"Suspicious top-level domain",
			"Contains suspicious keywords",
		}),
		TriggeredRules:   []string{"brand_in_subdomain", "suspicious_tld", "has_suspicious_keyword"},
		RegisteredDomain: "verify-account.tk",
		PublicSuffix:     "tk",
	}
	safe := &domain.Report{
		URL:         "https://www.google.com",
		ScoreResult: domain.NewScoreResult(0, nil),
	}

	return []domain.BatchItem{
		domain.NewBatchItem(0, phish.URL, phish, nil),
		domain.NewBatchItem(1, safe.URL, safe, nil),
		domain.NewBatchItem(2, "http://[::1", nil, perrors.NewKind(perrors.KindInvalidURL)),
	}
}
