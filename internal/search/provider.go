package search

import (
	"context"
	"time"
)

// Result represents a normalized search result from any provider
type Result struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Snippet       string  `json:"snippet"`
	Content       string  `json:"content,omitempty"`
	Score         float64 `json:"score"`
	PublishedDate string  `json:"published_date,omitempty"`
	Author        string  `json:"author,omitempty"`
	Provider      string  `json:"provider"` // "exa", "google", "mock"
}

// Response is one provider's answer for one query
type Response struct {
	Query    string        `json:"query"`
	Provider string        `json:"provider"`
	Results  []Result      `json:"results"`
	Elapsed  time.Duration `json:"-"`
}

// Answer is an AI-generated answer with its source URLs
type Answer struct {
	Text         string   `json:"answer"`
	CitationURLs []string `json:"citation_urls"`
}

// Provider is the interface all search providers must implement
type Provider interface {
	// Name returns the provider identifier (e.g., "exa", "google")
	Name() string

	// Search executes a query and returns normalized results
	Search(ctx context.Context, query string, maxResults int) (Response, error)
}

// AnswerProvider is implemented by providers that can generate a direct
// answer to a query in addition to ranked results.
type AnswerProvider interface {
	Answer(ctx context.Context, query string) (Answer, error)
}
