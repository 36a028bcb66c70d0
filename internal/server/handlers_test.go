package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"searchlens/internal/config"
	"searchlens/internal/core"
	"searchlens/internal/scraper"
	"searchlens/internal/search"
)

type fakeProvider struct {
	name  string
	fail  error
	calls atomic.Int32
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Search(ctx context.Context, query string, maxResults int) (search.Response, error) {
	f.calls.Add(1)
	if f.fail != nil {
		return search.Response{}, f.fail
	}
	return search.Response{
		Query:    query,
		Provider: f.name,
		Results: []search.Result{
			{Title: "A result", URL: "https://example.com/a", Snippet: "s", Score: 0.9, Provider: f.name},
		},
	}, nil
}

func testConfig() config.Config {
	return config.Config{
		Port:              5000,
		ExaAPIKey:         "key",
		DefaultMaxResults: 5,
		MaxResultsCap:     20,
		SearchTimeout:     time.Second,
	}
}

func newTestHandler(neural, traditional search.Provider) http.HandlerFunc {
	registry := search.NewRegistry()
	registry.Register(neural)
	registry.Register(traditional)
	services := Services{
		Core:     core.NewCompareCore(neural, traditional, nil, time.Second),
		Registry: registry,
		Scraper:  scraper.NewScraper(),
	}
	return CreateAPIHandler(services, testConfig())
}

func postCompare(t *testing.T, handler http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/compare", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCompareReturnsBothPanels(t *testing.T) {
	handler := newTestHandler(&fakeProvider{name: "exa"}, &fakeProvider{name: "mock"})

	rec := postCompare(t, handler, url.Values{"query": {"climate change policy"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp compareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad JSON: %v", err)
	}

	if resp.Query != "climate change policy" {
		t.Errorf("Query = %q", resp.Query)
	}
	if len(resp.Exa.Results) != 1 {
		t.Errorf("Exa results = %d", len(resp.Exa.Results))
	}
	if len(resp.Traditional.Results) != 1 {
		t.Errorf("Traditional results = %d", len(resp.Traditional.Results))
	}
	if len(resp.Traditional.WorkflowSteps) == 0 {
		t.Error("Expected workflow steps on the traditional panel")
	}
	for _, r := range append(resp.Exa.Results, resp.Traditional.Results...) {
		if r.Title == "" && r.URL == "" {
			t.Error("Result with neither title nor URL")
		}
	}
}

func TestCompareEmptyQuery(t *testing.T) {
	neural := &fakeProvider{name: "exa"}
	trad := &fakeProvider{name: "mock"}
	handler := newTestHandler(neural, trad)

	rec := postCompare(t, handler, url.Values{"query": {"  "}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", rec.Code)
	}
	if neural.calls.Load() != 0 || trad.calls.Load() != 0 {
		t.Error("Providers must not be called for an empty query")
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad JSON: %v", err)
	}
	if resp["error"] == "" {
		t.Error("Expected error message")
	}
}

func TestCompareFailureIsolation(t *testing.T) {
	handler := newTestHandler(&fakeProvider{name: "exa", fail: search.ErrAuth}, &fakeProvider{name: "mock"})

	rec := postCompare(t, handler, url.Values{"query": {"anything"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, one healthy provider should keep the request OK", rec.Code)
	}

	var resp compareResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad JSON: %v", err)
	}
	if resp.Exa.Error == "" || resp.Exa.ErrorKind != "auth" {
		t.Errorf("Exa panel error = %q kind = %q", resp.Exa.Error, resp.Exa.ErrorKind)
	}
	if len(resp.Traditional.Results) != 1 {
		t.Errorf("Traditional results = %d, failure must be isolated", len(resp.Traditional.Results))
	}
}

func TestCompareBothFail(t *testing.T) {
	handler := newTestHandler(
		&fakeProvider{name: "exa", fail: search.ErrNetwork},
		&fakeProvider{name: "mock", fail: search.ErrNetwork},
	)

	rec := postCompare(t, handler, url.Values{"query": {"anything"}})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("Status = %d, want 502 when both providers fail", rec.Code)
	}
}

func TestCompareMethodNotAllowed(t *testing.T) {
	handler := newTestHandler(&fakeProvider{name: "exa"}, &fakeProvider{name: "mock"})

	req := httptest.NewRequest(http.MethodGet, "/api/compare", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Status = %d, want 405", rec.Code)
	}
}

func TestCompareBadMaxResults(t *testing.T) {
	handler := newTestHandler(&fakeProvider{name: "exa"}, &fakeProvider{name: "mock"})

	rec := postCompare(t, handler, url.Values{"query": {"q"}, "max_results": {"abc"}})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	handler := newTestHandler(&fakeProvider{name: "exa"}, &fakeProvider{name: "mock"})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d", rec.Code)
	}

	var resp struct {
		Status           string   `json:"status"`
		ExaAPIConfigured bool     `json:"exa_api_configured"`
		Providers        []string `json:"providers"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Bad JSON: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("Status = %q", resp.Status)
	}
	if !resp.ExaAPIConfigured {
		t.Error("Expected exa_api_configured true")
	}
	if len(resp.Providers) != 2 {
		t.Errorf("Providers = %v", resp.Providers)
	}
}

func TestScrapeRequiresURL(t *testing.T) {
	handler := newTestHandler(&fakeProvider{name: "exa"}, &fakeProvider{name: "mock"})

	req := httptest.NewRequest(http.MethodPost, "/api/scrape", strings.NewReader(""))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", rec.Code)
	}
}

func TestUnknownPath(t *testing.T) {
	handler := newTestHandler(&fakeProvider{name: "exa"}, &fakeProvider{name: "mock"})

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404", rec.Code)
	}
}
