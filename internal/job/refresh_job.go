package job

import (
	"context"
	"log"
	"time"

	"redemption-index/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Refresher recomputes and re-caches the index report.
type Refresher interface {
	Refresh(ctx context.Context) domain.IndexReport
}

// RefreshJob keeps the report cache warm by recomputing on a fixed
// interval, so client polls are served from cache instead of fanning
// out to the upstream feeds.
type RefreshJob struct {
	tracer       trace.Tracer
	refresher    Refresher
	pollInterval time.Duration
}

func NewRefreshJob(tracer trace.Tracer, refresher Refresher, pollInterval time.Duration) *RefreshJob {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Minute
	}
	return &RefreshJob{tracer: tracer, refresher: refresher, pollInterval: pollInterval}
}

func (j *RefreshJob) Start(ctx context.Context) {
	if j.refresher == nil {
		log.Println("Index refresh job disabled: no refresher")
		<-ctx.Done()
		return
	}

	j.runOnce(ctx)
	ticker := time.NewTicker(j.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *RefreshJob) runOnce(ctx context.Context) {
	ctx, span := j.tracer.Start(ctx, "refresh-job.run-once")
	defer span.End()

	report := j.refresher.Refresh(ctx)
	if report.Status != "" {
		log.Printf("Index refresh complete total=%d status=%s", report.TotalScore, report.Status)
		return
	}
	log.Printf("Index refresh complete total=%d raw=%d", report.TotalScore, report.RawScore)
}
