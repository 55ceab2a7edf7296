package provider

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"redemption-index/internal/fetch"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const wikiBaseURL = "https://wikimedia.org"

// WikiProvider fetches per-article daily pageview counts from the
// Wikimedia REST metrics API.
type WikiProvider struct {
	fetcher *fetch.Client
	baseURL string
	project string
	tracer  trace.Tracer
}

func NewWikiProvider(tracer trace.Tracer, fetcher *fetch.Client) *WikiProvider {
	return &WikiProvider{
		fetcher: fetcher,
		baseURL: wikiBaseURL,
		project: "he.wikipedia",
		tracer:  tracer,
	}
}

// DailyViews returns the pageview count for one article on one day.
// The day is formatted as the compact YYYYMMDD key the API expects.
func (p *WikiProvider) DailyViews(ctx context.Context, article string, day time.Time) (int, error) {
	ctx, span := p.tracer.Start(ctx, "wiki.daily-views",
		trace.WithAttributes(attribute.String("article", article)))
	defer span.End()

	dateKey := day.Format("20060102")
	viewsURL := fmt.Sprintf(
		"%s/api/rest_v1/metrics/pageviews/per-article/%s/all-access/all-agents/%s/daily/%s/%s",
		p.baseURL, p.project, url.PathEscape(article), dateKey, dateKey,
	)

	var payload struct {
		Items []struct {
			Views int `json:"views"`
		} `json:"items"`
	}
	if err := p.fetcher.GetJSON(ctx, "wikimedia", viewsURL, &payload); err != nil {
		return 0, err
	}
	if len(payload.Items) == 0 {
		return 0, fmt.Errorf("no pageview datapoint for %s on %s", article, dateKey)
	}
	return payload.Items[0].Views, nil
}
