// internal/core/domain/result_test.go
package domain

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"

	"phishscan/internal/testutil"
)

func TestClassificationFor_Boundaries(t *testing.T) {
	tests := []struct {
		score    int
		expected Classification
	}{
		{0, ClassificationLegitimate},
		{4, ClassificationLegitimate},
		{5, ClassificationSuspicious},
		{9, ClassificationSuspicious},
		{10, ClassificationPhishing},
		{35, ClassificationPhishing},
		{46, ClassificationPhishing},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			testutil.AssertEqual(t, ClassificationFor(tt.score), tt.expected, "classification")
		})
	}
}

func TestNewScoreResult(t *testing.T) {
	t.Run("legitimate without factors gets sentinel", func(t *testing.T) {
		r := NewScoreResult(0, nil)
		testutil.AssertEqual(t, r.Classification, ClassificationLegitimate, "classification")
		testutil.AssertEqual(t, r.Confidence, ConfidenceLowRisk, "confidence")
		testutil.AssertEqual(t, r.MaxScore, MaxScore, "max score")
		testutil.AssertDeepEqual(t, r.RiskFactors, []string{NoRedFlags}, "risk factors")
	})

	t.Run("legitimate with factors keeps them", func(t *testing.T) {
		r := NewScoreResult(1, []string{"Not using HTTPS"})
		testutil.AssertDeepEqual(t, r.RiskFactors, []string{"Not using HTTPS"}, "risk factors")
	})

	t.Run("suspicious", func(t *testing.T) {
		r := NewScoreResult(5, []string{"a", "b"})
		testutil.AssertEqual(t, r.Classification, ClassificationSuspicious, "classification")
		testutil.AssertEqual(t, r.Confidence, ConfidenceMediumRisk, "confidence")
		testutil.AssertEqual(t, r.Message, ClassificationSuspicious.Message(), "message")
	})

	t.Run("factors are copied", func(t *testing.T) {
		factors := []string{"a"}
		r := NewScoreResult(12, factors)
		factors[0] = "mutated"
		testutil.AssertEqual(t, r.RiskFactors[0], "a", "result must not alias input")
	})
}

func TestScoreResult_JSONFields(t *testing.T) {
	data, err := json.Marshal(NewScoreResult(10, []string{"Uses IP address instead of domain name"}))
	testutil.AssertNoError(t, err, "marshal")

	var fields map[string]any
	testutil.AssertNoError(t, json.Unmarshal(data, &fields), "unmarshal")

	for _, key := range []string{"prediction", "risk_score", "max_score", "message", "confidence", "risk_factors"} {
		if _, ok := fields[key]; !ok {
			t.Errorf("missing JSON field %q in %s", key, data)
		}
	}
	testutil.AssertEqual(t, len(fields), 6, "field count")
}

func TestReport_FlattensScoreResult(t *testing.T) {
	report := Report{
		URL:         "https://www.google.com",
		ScoreResult: NewScoreResult(0, nil),
	}

	data, err := json.Marshal(report)
	testutil.AssertNoError(t, err, "json marshal")
	testutil.AssertContains(t, string(data), `"prediction":"legitimate"`, "json flattening")

	out, err := yaml.Marshal(report)
	testutil.AssertNoError(t, err, "yaml marshal")
	testutil.AssertContains(t, string(out), "prediction: legitimate", "yaml inlining")
}
