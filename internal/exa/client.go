package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"searchlens/internal/search"
)

const (
	searchURL = "https://api.exa.ai/search"
	answerURL = "https://api.exa.ai/answer"

	// Exa returns full page text; cap it so responses stay reasonable
	maxContentChars = 10000
)

// Client is an Exa Search API client
type Client struct {
	apiKey    string
	searchURL string
	answerURL string
	client    *http.Client
}

// NewClient creates a new Exa API client. The key must be non-empty;
// validation happens at construction so a missing EXA_API_KEY fails the
// process at startup, before any network call.
func NewClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: EXA_API_KEY is not set", search.ErrMissingCredential)
	}
	return &Client{
		apiKey:    apiKey,
		searchURL: searchURL,
		answerURL: answerURL,
		client:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// searchRequest represents the Exa /search payload
type searchRequest struct {
	Query      string          `json:"query"`
	NumResults int             `json:"numResults,omitempty"`
	Type       string          `json:"type,omitempty"` // "auto", "neural" or "keyword"
	Contents   contentsOptions `json:"contents,omitempty"`
}

type contentsOptions struct {
	Text textOptions `json:"text"`
}

type textOptions struct {
	MaxCharacters   int  `json:"maxCharacters,omitempty"`
	IncludeHTMLTags bool `json:"includeHtmlTags"`
}

type searchResult struct {
	Title         string   `json:"title"`
	URL           string   `json:"url"`
	Text          string   `json:"text,omitempty"`
	Score         float64  `json:"score"`
	Highlights    []string `json:"highlights,omitempty"`
	PublishedDate string   `json:"publishedDate,omitempty"`
	Author        string   `json:"author,omitempty"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// answerRequest represents the Exa /answer payload
type answerRequest struct {
	Query string `json:"query"`
	Text  bool   `json:"text"`
}

type answerResponse struct {
	Answer    string `json:"answer"`
	Citations []struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	} `json:"citations"`
}

// Name returns the provider identifier
func (c *Client) Name() string {
	return "exa"
}

// Search implements search.Provider using Exa's search-and-contents call,
// so results carry full extracted page text in addition to snippets.
func (c *Client) Search(ctx context.Context, query string, maxResults int) (search.Response, error) {
	if maxResults <= 0 {
		maxResults = 5
	}

	start := time.Now()
	reqBody := searchRequest{
		Query:      query,
		NumResults: maxResults,
		Type:       "auto",
		Contents: contentsOptions{
			Text: textOptions{
				MaxCharacters:   maxContentChars,
				IncludeHTMLTags: false,
			},
		},
	}

	log.Printf("[Exa] Searching for: %q (max %d results)", query, maxResults)

	var payload searchResponse
	if err := c.post(ctx, c.searchURL, reqBody, &payload); err != nil {
		return search.Response{}, err
	}

	results := make([]search.Result, 0, len(payload.Results))
	for _, r := range payload.Results {
		title := r.Title
		if title == "" {
			title = "No title"
		}
		if r.URL == "" && r.Title == "" {
			continue
		}
		content := CleanMarkdown(r.Text)
		results = append(results, search.Result{
			Title:         title,
			URL:           r.URL,
			Snippet:       snippetFrom(r.Highlights, content),
			Content:       content,
			Score:         r.Score,
			PublishedDate: r.PublishedDate,
			Author:        r.Author,
			Provider:      c.Name(),
		})
	}

	log.Printf("[Exa] Found %d results for query: %s", len(results), query)
	if len(results) == 0 {
		return search.Response{}, fmt.Errorf("exa search %q: %w", query, search.ErrNoResults)
	}

	return search.Response{
		Query:    query,
		Provider: c.Name(),
		Results:  results,
		Elapsed:  time.Since(start),
	}, nil
}

// Answer implements search.AnswerProvider using Exa's Answer API. The
// returned text has inline markdown citations stripped for display.
func (c *Client) Answer(ctx context.Context, query string) (search.Answer, error) {
	log.Printf("[Exa] Fetching answer for: %q", query)

	var payload answerResponse
	if err := c.post(ctx, c.answerURL, answerRequest{Query: query, Text: true}, &payload); err != nil {
		return search.Answer{}, err
	}

	urls := make([]string, 0, len(payload.Citations))
	for _, cit := range payload.Citations {
		if cit.URL != "" {
			urls = append(urls, cit.URL)
		}
	}

	return search.Answer{
		Text:         CleanAnswer(payload.Answer),
		CitationURLs: urls,
	}, nil
}

func (c *Client) post(ctx context.Context, url string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", search.ErrNetwork, err)
	}
	defer resp.Body.Close()

	log.Printf("[Exa] Response status: %d", resp.StatusCode)

	if kindErr := search.ErrorFromStatus(resp.StatusCode); kindErr != nil {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: api error %d %s", kindErr, resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// snippetFrom prefers highlights, falling back to the leading content text
func snippetFrom(highlights []string, content string) string {
	if len(highlights) > 0 {
		return highlights[0]
	}
	const max = 200
	if len(content) > max {
		return content[:max] + "..."
	}
	return content
}
