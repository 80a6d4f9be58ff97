// internal/core/usecases/classify_service.go
package usecases

import (
	"context"

	"phishscan/internal/core/domain"
	"phishscan/internal/platform/logx"
	"phishscan/internal/platform/validator"
)

// ClassifyService runs the extractor and the scorer for one URL.
// It is stateless apart from its logger and is safe for concurrent use.
type ClassifyService struct {
	extractor *Extractor
	scorer    *Scorer
	logger    logx.Logger
}

// NewClassifyService creates a ClassifyService. A nil logger discards output.
func NewClassifyService(logger logx.Logger) *ClassifyService {
	if logger == nil {
		logger = logx.Discard()
	}
	return &ClassifyService{
		extractor: NewExtractor(),
		scorer:    NewScorer(),
		logger:    logger.With("component", "classifier"),
	}
}

// Score is the bare classification call: the verdict for rawURL, or an
// InvalidURL error. The scheme is not checked here.
func (s *ClassifyService) Score(rawURL string) (domain.ScoreResult, error) {
	f, err := s.extractor.Extract(rawURL)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	return s.scorer.Score(f), nil
}

// Classify returns the verdict for rawURL together with the data that
// explains it. ctx is only checked before work starts.
func (s *ClassifyService) Classify(ctx context.Context, rawURL string) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parts, err := domain.ParseURL(rawURL)
	if err != nil {
		s.logger.Debug("url rejected", "url", rawURL, "error", err.Error())
		return nil, err
	}

	features := s.extractor.FromParts(parts)
	scoring := s.scorer.Evaluate(features)
	registered, suffix := validator.RegistrableDomain(parts.Host)

	s.logger.Debug("url classified",
		"url", rawURL,
		"prediction", scoring.Result.Classification,
		"score", scoring.Result.RiskScore,
		"rules", len(scoring.Triggered),
	)

	return &domain.Report{
		URL:              rawURL,
		ScoreResult:      scoring.Result,
		TriggeredRules:   scoring.Triggered,
		Parts:            parts,
		Features:         features,
		RegisteredDomain: registered,
		PublicSuffix:     suffix,
	}, nil
}
