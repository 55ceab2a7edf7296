package index

import (
	"context"
	"log"
	"regexp"
	"time"

	"redemption-index/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// DiscourseEvaluator scores negative coverage co-occurring with the
// community name. Each negative keyword is counted only when it appears
// in the same fragment as the community (either order); the score is the
// direct capped count, one point per match.
type DiscourseEvaluator struct {
	tracer   trace.Tracer
	news     NewsSearcher
	cfg      DiscourseConfig
	patterns []*regexp.Regexp
}

func NewDiscourseEvaluator(tracer trace.Tracer, news NewsSearcher, cfg DiscourseConfig) *DiscourseEvaluator {
	patterns := make([]*regexp.Regexp, 0, len(cfg.Keywords))
	for _, keyword := range cfg.Keywords {
		// Either-order proximity match. `.` stops at newlines, which keeps
		// matches inside a single feed fragment.
		expr := regexp.QuoteMeta(cfg.Community) + `.*?` + regexp.QuoteMeta(keyword) +
			`|` + regexp.QuoteMeta(keyword) + `.*?` + regexp.QuoteMeta(cfg.Community)
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return &DiscourseEvaluator{tracer: tracer, news: news, cfg: cfg, patterns: patterns}
}

func (e *DiscourseEvaluator) Key() domain.MetricKey { return domain.MetricWisdomDecay }

func (e *DiscourseEvaluator) Evaluate(ctx context.Context, now time.Time) domain.SubScoreResult {
	ctx, span := e.tracer.Start(ctx, "index.discourse")
	defer span.End()

	text, err := e.news.Search(ctx, e.cfg.Query)
	if err != nil {
		log.Printf("discourse: news search failed: %v", err)
		return domain.SubScoreResult{
			Score:   0,
			Summary: "no data",
			Details: map[string]any{},
			Quote:   e.cfg.Quote,
		}
	}

	count := 0
	for _, pattern := range e.patterns {
		count += len(pattern.FindAllStringIndex(text, -1))
	}

	score := clampScore(count, domain.MaxSubScore)

	status := ""
	if tier, ok := e.cfg.Labels.Match(float64(score)); ok {
		status = tier.Label
	}

	return domain.SubScoreResult{
		Score:   score,
		Summary: status,
		Details: map[string]any{
			"articles": count,
			"formula":  "one article = one point",
		},
		Quote: e.cfg.Quote,
	}
}
