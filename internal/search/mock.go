package search

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
)

// MockProvider simulates a traditional search API (Google, Bing, SerpApi)
// when no real key is configured. It returns only titles, URLs and short
// snippets, never extracted page content, which is the shape those APIs
// actually produce. Results are deterministic for a given query.
type MockProvider struct{}

// NewMockProvider creates the offline traditional-search stand-in
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name returns the provider identifier
func (m *MockProvider) Name() string {
	return "mock"
}

// Search generates deterministic mock results for the query
func (m *MockProvider) Search(ctx context.Context, query string, maxResults int) (Response, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Response{}, fmt.Errorf("mock search: query cannot be empty")
	}
	if maxResults <= 0 {
		maxResults = 5
	}

	start := time.Now()
	titled := titleCase(query)
	slug := strings.ReplaceAll(query, " ", "-")

	templates := []Result{
		{
			Title:   titled + " - Comprehensive Guide",
			URL:     "https://example.com/guide/" + slug,
			Snippet: fmt.Sprintf("Learn about %s in this comprehensive guide. Discover the best practices, tips, and techniques for understanding %s...", query, query),
		},
		{
			Title:   "Understanding " + titled + ": A Complete Overview",
			URL:     "https://docs.example.org/" + slug,
			Snippet: fmt.Sprintf("Everything you need to know about %s. This article covers the fundamentals, advanced concepts, and practical applications...", query),
		},
		{
			Title:   titled + " Explained - Tutorial",
			URL:     "https://tutorial.site/" + strings.ReplaceAll(query, " ", "/"),
			Snippet: fmt.Sprintf("A step-by-step tutorial on %s. Perfect for beginners and advanced users alike. Includes examples and best practices...", query),
		},
		{
			Title:   "Latest News and Updates on " + titled,
			URL:     "https://news.example.com/topics/" + slug,
			Snippet: fmt.Sprintf("Stay up to date with the latest developments in %s. Recent articles, announcements, and industry insights...", query),
		},
		{
			Title:   titled + " - Wikipedia",
			URL:     "https://wikipedia.org/wiki/" + strings.ReplaceAll(query, " ", "_"),
			Snippet: fmt.Sprintf("%s refers to... From Wikipedia, the free encyclopedia. This article needs additional citations for verification...", titled),
		},
		{
			Title:   titled + " Best Practices and Tips",
			URL:     "https://medium.com/@author/" + slug + "-best-practices",
			Snippet: fmt.Sprintf("In this article, we explore the best practices for %s. Learn from industry experts and improve your understanding...", query),
		},
		{
			Title:   "The Ultimate " + titled + " Resource",
			URL:     "https://resources.dev/" + slug,
			Snippet: fmt.Sprintf("Your one-stop resource for everything related to %s. Curated links, tutorials, and documentation...", query),
		},
		{
			Title:   titled + " FAQ - Frequently Asked Questions",
			URL:     "https://faq.example.com/" + slug,
			Snippet: fmt.Sprintf("Find answers to the most common questions about %s. Our FAQ covers basics to advanced topics...", query),
		},
		{
			Title:   "Getting Started with " + titled,
			URL:     "https://quickstart.io/" + slug,
			Snippet: fmt.Sprintf("New to %s? This getting started guide will help you understand the fundamentals quickly and efficiently...", query),
		},
		{
			Title:   titled + " Documentation - Official",
			URL:     "https://docs.official.com/" + slug,
			Snippet: fmt.Sprintf("Official documentation for %s. Complete API reference, guides, and examples for developers...", query),
		},
	}

	if maxResults > len(templates) {
		maxResults = len(templates)
	}
	results := make([]Result, maxResults)
	for i := 0; i < maxResults; i++ {
		r := templates[i]
		r.Provider = m.Name()
		// Position-based score in the same range real providers use
		r.Score = PositionScore(i)
		results[i] = r
	}

	return Response{
		Query:    query,
		Provider: m.Name(),
		Results:  results,
		Elapsed:  time.Since(start),
	}, nil
}

// PositionScore synthesizes a relevance score from a result's rank, since
// traditional search APIs do not expose one. Scores stay in 0.1..1.0.
func PositionScore(pos int) float64 {
	score := 1.0 - float64(pos)*0.05
	if score < 0.1 {
		score = 0.1
	}
	return score
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
