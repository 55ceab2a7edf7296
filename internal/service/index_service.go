package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"redemption-index/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const reportCacheKey = "index:report"

// ReportComputer produces one index report for a given instant.
type ReportComputer interface {
	Compute(ctx context.Context, now time.Time) domain.IndexReport
}

// RedisClient is the subset of the redis client the service touches.
type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// IndexService serves the current report, reading through an optional
// Redis cache so repeated polls inside one update interval do not
// re-hit the upstream feeds. The cache is best-effort: any cache error
// is logged and the report is computed anyway.
type IndexService struct {
	tracer trace.Tracer
	engine ReportComputer
	redis  RedisClient
	ttl    time.Duration
	now    func() time.Time
}

func NewIndexService(tracer trace.Tracer, engine ReportComputer, redisClient RedisClient, ttl time.Duration) *IndexService {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &IndexService{
		tracer: tracer,
		engine: engine,
		redis:  redisClient,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source. The blackout rules are weekday and
// hour sensitive, so the server injects a clock pinned to the index
// timezone instead of UTC.
func (s *IndexService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// GetReport returns the cached report when fresh, otherwise computes and
// caches a new one.
func (s *IndexService) GetReport(ctx context.Context) domain.IndexReport {
	ctx, span := s.tracer.Start(ctx, "index-service.get-report")
	defer span.End()

	if s.redis != nil {
		if cached := s.getCachedReport(ctx); cached != nil {
			return *cached
		}
	}
	return s.Refresh(ctx)
}

// Refresh computes a fresh report and re-caches it.
func (s *IndexService) Refresh(ctx context.Context) domain.IndexReport {
	ctx, span := s.tracer.Start(ctx, "index-service.refresh")
	defer span.End()

	report := s.engine.Compute(ctx, s.now())

	if s.redis != nil {
		if err := s.setCachedReport(ctx, report); err != nil {
			log.Printf("redis cache write error: %v", err)
		}
	}
	return report
}

func (s *IndexService) getCachedReport(ctx context.Context) *domain.IndexReport {
	raw, err := s.redis.Get(ctx, reportCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis cache read error: %v", err)
		}
		return nil
	}

	var report domain.IndexReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		log.Printf("redis cache decode error: %v", err)
		return nil
	}

	// A cached report past its own next-update mark is stale even if the
	// key has not expired yet.
	if s.now().After(report.NextUpdate) {
		return nil
	}
	return &report
}

func (s *IndexService) setCachedReport(ctx context.Context, report domain.IndexReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, reportCacheKey, raw, s.ttl).Err()
}
