package provider

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"redemption-index/internal/fetch"

	"go.opentelemetry.io/otel/trace"
)

const newsBaseURL = "https://news.google.com"

// NewsProvider fetches Google News RSS search results for Hebrew-locale
// queries. The feed is returned as an opaque text blob; the scoring engine
// only scans it for keyword occurrences and never parses the XML.
type NewsProvider struct {
	fetcher *fetch.Client
	baseURL string
	tracer  trace.Tracer
}

func NewNewsProvider(tracer trace.Tracer, fetcher *fetch.Client) *NewsProvider {
	return &NewsProvider{
		fetcher: fetcher,
		baseURL: newsBaseURL,
		tracer:  tracer,
	}
}

// Search runs one RSS search and returns the raw feed text.
func (p *NewsProvider) Search(ctx context.Context, query string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "news.search")
	defer span.End()

	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("news query is required")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("hl", "he")
	params.Set("gl", "IL")
	params.Set("ceid", "IL:he")

	searchURL := p.baseURL + "/rss/search?" + params.Encode()
	return p.fetcher.GetText(ctx, "news", searchURL)
}
