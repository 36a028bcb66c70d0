package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"searchlens/internal/config"
	"searchlens/internal/core"
	"searchlens/internal/metrics"
	"searchlens/internal/scraper"
	"searchlens/internal/search"
)

// Services groups the dependencies the API handlers need
type Services struct {
	Core     *core.CompareCore
	Registry *search.Registry
	Scraper  *scraper.Scraper
}

// CreateAPIHandler creates the JSON API endpoints
func CreateAPIHandler(services Services, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/compare":
			handleCompare(w, r, services.Core, cfg)
		case "/api/scrape":
			handleScrape(w, r, services.Scraper)
		case "/api/health":
			handleHealth(w, r, services.Registry, cfg)
		default:
			writeError(w, http.StatusNotFound, "not found")
		}
	}
}

// panelPayload is one provider's side of the compare response
type panelPayload struct {
	Provider      string                  `json:"provider"`
	Results       []search.Result         `json:"results"`
	Metrics       metrics.ProviderMetrics `json:"metrics"`
	ElapsedMillis int64                   `json:"elapsed_ms"`
	Error         string                  `json:"error,omitempty"`
	ErrorKind     string                  `json:"error_kind,omitempty"`
	AIAnswer      *search.Answer          `json:"ai_answer,omitempty"`
	WorkflowSteps []string                `json:"workflow_steps,omitempty"`
	Problems      []string                `json:"problems,omitempty"`
}

type compareResponse struct {
	Query       string             `json:"query"`
	Exa         panelPayload       `json:"exa"`
	Traditional panelPayload       `json:"traditional"`
	Comparison  metrics.Comparison `json:"comparison"`
}

func handleCompare(w http.ResponseWriter, r *http.Request, compareCore *core.CompareCore, cfg config.Config) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	query := r.FormValue("query")
	maxResults := cfg.DefaultMaxResults
	if raw := r.FormValue("max_results"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "max_results must be an integer")
			return
		}
		maxResults = clamp(n, 1, cfg.MaxResultsCap)
	}

	cmp, err := compareCore.Compare(r.Context(), query, maxResults)
	if err != nil {
		// Only an empty query reaches here; no provider was called
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := compareResponse{
		Query:       cmp.Query,
		Exa:         newPanel(cmp.Neural),
		Traditional: newPanel(cmp.Traditional),
		Comparison:  cmp.Insights,
	}
	if cmp.AnswerErr == nil && cmp.Answer.Text != "" {
		resp.Exa.AIAnswer = &cmp.Answer
	}
	resp.Traditional.WorkflowSteps = search.TraditionalWorkflowSteps()
	resp.Traditional.Problems = search.TraditionalWorkflowProblems()

	status := http.StatusOK
	if cmp.Failed() {
		status = http.StatusBadGateway
	}
	writeJSON(w, status, resp)
}

func newPanel(p core.Panel) panelPayload {
	payload := panelPayload{
		Provider:      p.Provider,
		Results:       p.Response.Results,
		Metrics:       p.Metrics,
		ElapsedMillis: p.Response.Elapsed.Milliseconds(),
	}
	if payload.Results == nil {
		payload.Results = []search.Result{}
	}
	if p.Err != nil {
		payload.Error = p.Err.Error()
		payload.ErrorKind = search.Classify(p.Err)
	}
	return payload
}

func handleScrape(w http.ResponseWriter, r *http.Request, sc *scraper.Scraper) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid form data")
		return
	}

	target := r.FormValue("url")
	if target == "" {
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	page, err := sc.Scrape(r.Context(), target)
	if err != nil {
		log.Printf("[API] Scrape failed for %s: %v", target, err)
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func handleHealth(w http.ResponseWriter, r *http.Request, registry *search.Registry, cfg config.Config) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":              "healthy",
		"exa_api_configured":  cfg.ExaAPIKey != "",
		"serpapi_configured":  cfg.SerpAPIKey != "",
		"providers":           registry.Names(),
		"default_max_results": cfg.DefaultMaxResults,
		"search_timeout_ms":   cfg.SearchTimeout.Milliseconds(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
