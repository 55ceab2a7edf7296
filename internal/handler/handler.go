package handler

import (
	"context"

	"redemption-index/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// ReportProvider serves the current index report. It never fails: the
// engine's contract is a parseable envelope under any upstream outage.
type ReportProvider interface {
	GetReport(ctx context.Context) domain.IndexReport
}

type Handler struct {
	tracer  trace.Tracer
	reports ReportProvider
}

func New(tracer trace.Tracer, reports ReportProvider) *Handler {
	return &Handler{tracer: tracer, reports: reports}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/api/index", NoStore(), h.GetIndex)
}
