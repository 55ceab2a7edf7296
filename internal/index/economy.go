package index

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"redemption-index/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// QuoteFetcher supplies one instrument's current price and closes window.
type QuoteFetcher interface {
	FetchQuote(ctx context.Context, symbol string) (*domain.Quote, error)
}

// NewsSearcher supplies a raw news feed blob for one search query.
type NewsSearcher interface {
	Search(ctx context.Context, query string) (string, error)
}

// EconomyEvaluator scores economic stress: each instrument's deviation
// from its own month-average is run through a per-instrument tier table,
// plus a debt-news keyword tier. Fault isolation is per instrument: a
// failed quote contributes nothing and the rest still score.
type EconomyEvaluator struct {
	tracer trace.Tracer
	quotes QuoteFetcher
	news   NewsSearcher
	cfg    EconomyConfig
}

func NewEconomyEvaluator(tracer trace.Tracer, quotes QuoteFetcher, news NewsSearcher, cfg EconomyConfig) *EconomyEvaluator {
	return &EconomyEvaluator{tracer: tracer, quotes: quotes, news: news, cfg: cfg}
}

func (e *EconomyEvaluator) Key() domain.MetricKey { return domain.MetricPoverty }

func (e *EconomyEvaluator) Evaluate(ctx context.Context, now time.Time) domain.SubScoreResult {
	ctx, span := e.tracer.Start(ctx, "index.economy")
	defer span.End()

	score := 0
	indicators := []string{}
	details := map[string]any{}

	for _, inst := range e.cfg.Instruments {
		quote, err := e.quotes.FetchQuote(ctx, inst.Symbol)
		if err != nil {
			log.Printf("economy: %s quote failed: %v", inst.Key, err)
			continue
		}

		monthAvg := average(quote.Closes)
		deviation := deviationPercent(quote.Current, monthAvg)
		details[inst.Key] = map[string]any{
			"current":       quote.Current,
			"monthAvg":      monthAvg,
			"changePercent": deviation,
		}

		magnitude := deviation
		if inst.Falling {
			magnitude = -deviation
		}
		tier, ok := inst.Tiers.Match(magnitude)
		if !ok {
			continue
		}
		score += tier.Points
		indicators = append(indicators, fmt.Sprintf("%s %+.1f%%", inst.Label, deviation))
	}

	if tier, detail, ok := e.scoreDebtNews(ctx); ok {
		score += tier.Points
		indicators = append(indicators, tier.Label)
		details["debtNews"] = detail
	} else if detail != nil {
		details["debtNews"] = detail
	}

	summary := e.cfg.StableSummary
	if len(indicators) > 0 {
		summary = strings.Join(indicators, " | ")
	}

	return domain.SubScoreResult{
		Score:   clampScore(score, domain.MaxSubScore),
		Summary: summary,
		Details: details,
		Quote:   e.cfg.Quote,
	}
}

func (e *EconomyEvaluator) scoreDebtNews(ctx context.Context) (Tier, map[string]any, bool) {
	text, err := e.news.Search(ctx, e.cfg.DebtQuery)
	if err != nil {
		log.Printf("economy: debt news search failed: %v", err)
		return Tier{}, nil, false
	}

	count := countOccurrences(text, e.cfg.DebtKeywords)
	percent := percentOf(float64(count), e.cfg.DebtBaseline)
	detail := map[string]any{
		"count":   count,
		"average": e.cfg.DebtBaseline,
		"percent": percent,
	}

	tier, ok := e.cfg.DebtTiers.Match(percent)
	return tier, detail, ok
}
