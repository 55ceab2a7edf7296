package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"redemption-index/internal/watch"
)

func TestFetchReportDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/index" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"totalScore":42,"rawScore":42,"maxScore":100,"metrics":{}}`))
	}))
	defer srv.Close()

	client := &http.Client{Timeout: time.Second}
	msg := fetchReport(client, srv.URL)()

	loaded, ok := msg.(watch.ReportLoaded)
	if !ok {
		t.Fatalf("unexpected message type %T", msg)
	}
	if loaded.Err != nil {
		t.Fatalf("unexpected error: %v", loaded.Err)
	}
	if loaded.Report.TotalScore != 42 {
		t.Fatalf("unexpected total: %d", loaded.Report.TotalScore)
	}
}

func TestFetchReportSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := &http.Client{Timeout: time.Second}
	msg := fetchReport(client, srv.URL)()

	loaded, ok := msg.(watch.ReportLoaded)
	if !ok {
		t.Fatalf("unexpected message type %T", msg)
	}
	if loaded.Err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
