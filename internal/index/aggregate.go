package index

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"redemption-index/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Evaluator computes one category's sub-score. Implementations are pure
// functions of their fetched inputs plus fixed constants and must never
// return an error: fetch failures degrade the result instead.
type Evaluator interface {
	Key() domain.MetricKey
	Evaluate(ctx context.Context, now time.Time) domain.SubScoreResult
}

const degradedPlaceholderScore = 50

// Engine combines the blackout check and the four evaluators into the
// response envelope. Stateless; every invocation is independent.
type Engine struct {
	tracer     trace.Tracer
	blackout   *BlackoutCheck
	evaluators []Evaluator
	interval   time.Duration
}

func NewEngine(tracer trace.Tracer, blackout *BlackoutCheck, interval time.Duration, evaluators ...Evaluator) *Engine {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Engine{
		tracer:     tracer,
		blackout:   blackout,
		evaluators: evaluators,
		interval:   interval,
	}
}

// Compute produces one report for the injected instant. The contract
// with the consumer is "always a parseable report": any failure that
// escapes the per-evaluator boundaries yields a degraded envelope,
// never an error.
func (e *Engine) Compute(ctx context.Context, now time.Time) (report domain.IndexReport) {
	ctx, span := e.tracer.Start(ctx, "index.compute")
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("index: unexpected compute failure: %v", r)
			report = e.degradedReport(now)
		}
	}()

	if state := e.blackout.Check(ctx, now); state.Suppressed {
		span.SetAttributes(attribute.String("blackout", state.Reason))
		return e.suppressedReport(now, state)
	}

	results := make(map[domain.MetricKey]domain.SubScoreResult, len(e.evaluators))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, ev := range e.evaluators {
		wg.Add(1)
		go func(ev Evaluator) {
			defer wg.Done()
			result := e.safeEvaluate(ctx, ev, now)
			mu.Lock()
			results[ev.Key()] = result
			mu.Unlock()
		}(ev)
	}
	wg.Wait()

	total := 0
	for _, result := range results {
		total += result.Score
	}

	percent := math.Min(float64(total), 99.9)

	return domain.IndexReport{
		TotalScore: int(math.Round(percent)),
		RawScore:   total,
		MaxScore:   len(e.evaluators) * domain.MaxSubScore,
		Timestamp:  now,
		NextUpdate: now.Add(e.interval),
		Metrics:    results,
	}
}

// safeEvaluate isolates evaluator panics: a panicking evaluator is
// replaced by a zero-score fallback and never takes down its siblings.
func (e *Engine) safeEvaluate(ctx context.Context, ev Evaluator, now time.Time) (result domain.SubScoreResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("index: evaluator %s panicked: %v", ev.Key(), r)
			result = domain.SubScoreResult{Score: 0, Summary: "error", Details: map[string]any{}}
		}
	}()
	return ev.Evaluate(ctx, now)
}

func (e *Engine) suppressedReport(now time.Time, state domain.BlackoutState) domain.IndexReport {
	metrics := make(map[domain.MetricKey]domain.SubScoreResult, len(domain.MetricKeys))
	for _, key := range domain.MetricKeys {
		metrics[key] = domain.SubScoreResult{Score: 0, Summary: state.Reason, Details: map[string]any{}}
	}
	return domain.IndexReport{
		TotalScore: 0,
		RawScore:   0,
		MaxScore:   len(domain.MetricKeys) * domain.MaxSubScore,
		Timestamp:  now,
		NextUpdate: now.Add(e.interval),
		Metrics:    metrics,
		Status:     state.Reason,
	}
}

func (e *Engine) degradedReport(now time.Time) domain.IndexReport {
	metrics := make(map[domain.MetricKey]domain.SubScoreResult, len(domain.MetricKeys))
	for _, key := range domain.MetricKeys {
		metrics[key] = domain.SubScoreResult{Score: 0, Summary: "temporarily unavailable", Details: map[string]any{}}
	}
	return domain.IndexReport{
		TotalScore: degradedPlaceholderScore,
		RawScore:   0,
		MaxScore:   len(domain.MetricKeys) * domain.MaxSubScore,
		Timestamp:  now,
		NextUpdate: now.Add(e.interval),
		Metrics:    metrics,
		Status:     "degraded",
		Error:      "index computation failed",
	}
}
