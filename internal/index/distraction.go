package index

import (
	"context"
	"log"
	"strings"
	"time"

	"redemption-index/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// PageviewFetcher supplies one article's daily view count.
type PageviewFetcher interface {
	DailyViews(ctx context.Context, article string, day time.Time) (int, error)
}

// DistractionEvaluator scores public inattention. Its tier table is
// inverted on purpose: the LESS the topic is read and mentioned, the
// HIGHER the score. Do not "fix" the direction to match the other
// evaluators.
type DistractionEvaluator struct {
	tracer trace.Tracer
	views  PageviewFetcher
	news   NewsSearcher
	cfg    DistractionConfig
}

func NewDistractionEvaluator(tracer trace.Tracer, views PageviewFetcher, news NewsSearcher, cfg DistractionConfig) *DistractionEvaluator {
	return &DistractionEvaluator{tracer: tracer, views: views, news: news, cfg: cfg}
}

func (e *DistractionEvaluator) Key() domain.MetricKey { return domain.MetricDistraction }

func (e *DistractionEvaluator) Evaluate(ctx context.Context, now time.Time) domain.SubScoreResult {
	ctx, span := e.tracer.Start(ctx, "index.distraction")
	defer span.End()

	yesterday := now.AddDate(0, 0, -1)

	pageviews := e.cfg.PageviewFallback
	if views, err := e.views.DailyViews(ctx, e.cfg.Article, yesterday); err != nil {
		log.Printf("distraction: pageviews failed, using fallback %d: %v", pageviews, err)
	} else {
		pageviews = views
	}

	mentions := e.cfg.MentionsFallback
	if text, err := e.news.Search(ctx, e.cfg.NewsQuery); err != nil {
		log.Printf("distraction: news search failed, using fallback %d: %v", mentions, err)
	} else {
		mentions = strings.Count(strings.ToLower(text), strings.ToLower(e.cfg.NewsKeyword))
	}

	total := pageviews + mentions
	percent := percentOf(float64(total), e.cfg.DailyBaseline)

	score := 0
	status := "normal interest"
	if tier, ok := e.cfg.Tiers.MatchBelow(percent); ok {
		score = tier.Points
		status = tier.Label
	}

	return domain.SubScoreResult{
		Score:   clampScore(score, domain.MaxSubScore),
		Summary: status,
		Details: map[string]any{
			"wiki":    pageviews,
			"news":    mentions,
			"total":   total,
			"average": e.cfg.DailyBaseline,
			"percent": percent,
		},
		Quote: e.cfg.Quote,
	}
}
