package scraper

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Scraper fetches a result URL and extracts readable content from its HTML.
// This is the manual step a traditional search pipeline needs for every
// result, since keyword APIs only hand back snippets.
type Scraper struct {
	client *http.Client
}

// Page is the extracted content of one fetched URL
type Page struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// NewScraper creates a scraper with a bounded request timeout
func NewScraper() *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

// Scrape fetches the URL and extracts title, meta description and main text
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (Page, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return Page{}, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}

	log.Printf("[Scraper] Fetching URL: %s", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Page{}, fmt.Errorf("failed to create request: %w", err)
	}

	// Browser-like headers to avoid trivial 403 blocks
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("failed to fetch url: %w", err)
	}
	defer resp.Body.Close()

	log.Printf("[Scraper] Response status: %d", resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("status code error: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse html: %w", err)
	}

	page := Page{
		URL:   rawURL,
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}
	if desc, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
		page.Description = strings.TrimSpace(desc)
	}

	doc.Find("script, style, nav, footer, header, aside, .sidebar, .advertisement, .ads").Remove()

	var sb strings.Builder
	selectors := []string{"article", "[role='main']", "main", ".post-content", ".article-content", ".entry-content", ".content"}
	for _, selector := range selectors {
		selection := doc.Find(selector)
		if selection.Length() > 0 {
			log.Printf("[Scraper] Found content with selector: %s", selector)
			selection.Find("p, h1, h2, h3, li").Each(func(i int, s *goquery.Selection) {
				text := strings.TrimSpace(s.Text())
				if len(text) > 20 {
					sb.WriteString(text)
					sb.WriteString("\n\n")
				}
			})
			break
		}
	}

	// Fallback: all paragraphs
	if sb.Len() == 0 {
		doc.Find("body p").Each(func(i int, s *goquery.Selection) {
			text := strings.TrimSpace(s.Text())
			if len(text) > 20 {
				sb.WriteString(text)
				sb.WriteString("\n\n")
			}
		})
	}

	page.Content = strings.TrimSpace(sb.String())
	if page.Content == "" && page.Description == "" {
		return Page{}, fmt.Errorf("no readable content found at %s", rawURL)
	}

	const maxContent = 10000
	if len(page.Content) > maxContent {
		page.Content = page.Content[:maxContent]
	}

	return page, nil
}
