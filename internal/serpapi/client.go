package serpapi

import (
	"context"
	"fmt"
	"log"
	"time"

	g "github.com/serpapi/google-search-results-golang"

	"searchlens/internal/search"
)

// Client is the traditional-search provider backed by SerpApi's Google
// engine. It returns what keyword search APIs return: titles, URLs and
// short snippets, with no extracted page content.
type Client struct {
	apiKey string
}

// NewClient creates a new SerpApi client
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: SERPAPI_API_KEY is not set", search.ErrMissingCredential)
	}
	return &Client{apiKey: apiKey}, nil
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "google"
}

// Search performs a Google search via SerpApi and normalizes the organic
// results. The SerpApi library has no context support, so the call runs in
// a goroutine and the context is honored while waiting.
func (c *Client) Search(ctx context.Context, query string, maxResults int) (search.Response, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	parameter := map[string]string{
		"engine":        "google",
		"q":             query,
		"google_domain": "google.com",
		"gl":            "us",
		"hl":            "en",
		"num":           fmt.Sprintf("%d", maxResults),
	}

	log.Printf("[SerpApi] Searching for: %q", query)
	start := time.Now()

	type outcome struct {
		data map[string]interface{}
		err  error
	}
	done := make(chan outcome, 1)
	go func() {
		s := g.NewGoogleSearch(parameter, c.apiKey)
		data, err := s.GetJSON()
		done <- outcome{data: data, err: err}
	}()

	var raw map[string]interface{}
	select {
	case <-ctx.Done():
		return search.Response{}, fmt.Errorf("%w: %v", search.ErrNetwork, ctx.Err())
	case out := <-done:
		if out.err != nil {
			return search.Response{}, fmt.Errorf("%w: serpapi: %v", search.ErrNetwork, out.err)
		}
		raw = out.data
	}

	if errMsg, ok := raw["error"].(string); ok && errMsg != "" {
		return search.Response{}, fmt.Errorf("%w: serpapi: %s", search.ErrAuth, errMsg)
	}

	organic, ok := raw["organic_results"].([]interface{})
	if !ok || len(organic) == 0 {
		log.Printf("[SerpApi] No organic_results found in response")
		return search.Response{}, fmt.Errorf("serpapi search %q: %w", query, search.ErrNoResults)
	}

	results := make([]search.Result, 0, len(organic))
	for i, item := range organic {
		if len(results) >= maxResults {
			break
		}
		res, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		title, _ := res["title"].(string)
		link, _ := res["link"].(string)
		snippet, _ := res["snippet"].(string)
		if title == "" && link == "" {
			continue
		}

		results = append(results, search.Result{
			Title:    title,
			URL:      link,
			Snippet:  snippet,
			Score:    search.PositionScore(i),
			Provider: c.Name(),
		})
	}

	log.Printf("[SerpApi] Found %d organic results", len(results))
	if len(results) == 0 {
		return search.Response{}, fmt.Errorf("serpapi search %q: %w", query, search.ErrNoResults)
	}

	return search.Response{
		Query:    query,
		Provider: c.Name(),
		Results:  results,
		Elapsed:  time.Since(start),
	}, nil
}
