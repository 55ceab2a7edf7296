package index

import (
	"context"
	"log"
	"time"

	"redemption-index/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// IncivilityEvaluator scores crime/violence coverage: a global keyword
// occurrence count over one news search, expressed as a percentage of a
// fixed editorial baseline and run through a descending tier table.
type IncivilityEvaluator struct {
	tracer trace.Tracer
	news   NewsSearcher
	cfg    IncivilityConfig
}

func NewIncivilityEvaluator(tracer trace.Tracer, news NewsSearcher, cfg IncivilityConfig) *IncivilityEvaluator {
	return &IncivilityEvaluator{tracer: tracer, news: news, cfg: cfg}
}

func (e *IncivilityEvaluator) Key() domain.MetricKey { return domain.MetricChutzpah }

func (e *IncivilityEvaluator) Evaluate(ctx context.Context, now time.Time) domain.SubScoreResult {
	ctx, span := e.tracer.Start(ctx, "index.incivility")
	defer span.End()

	text, err := e.news.Search(ctx, e.cfg.Query)
	if err != nil {
		log.Printf("incivility: news search failed: %v", err)
		return domain.SubScoreResult{
			Score:   0,
			Summary: "no data",
			Details: map[string]any{},
			Quote:   e.cfg.Quote,
		}
	}

	count := countOccurrences(text, e.cfg.Keywords)
	percent := percentOf(float64(count), e.cfg.Baseline)

	score := 0
	status := "normal level"
	if tier, ok := e.cfg.Tiers.Match(percent); ok {
		score = tier.Points
		status = tier.Label
	}

	return domain.SubScoreResult{
		Score:   clampScore(score, domain.MaxSubScore),
		Summary: status,
		Details: map[string]any{
			"count":   count,
			"average": e.cfg.Baseline,
			"percent": percent,
		},
		Quote: e.cfg.Quote,
	}
}
