package metrics

import (
	"strings"
	"testing"

	"searchlens/internal/search"
)

func contentResults(n, contentLen int) []search.Result {
	results := make([]search.Result, n)
	for i := range results {
		results[i] = search.Result{
			Title:   "t",
			URL:     "https://example.com",
			Snippet: "short snippet",
			Content: strings.Repeat("x", contentLen),
			Score:   0.8,
		}
	}
	return results
}

func TestForNeural(t *testing.T) {
	m := ForNeural(contentResults(4, 1000))

	if m.ResultCount != 4 {
		t.Errorf("ResultCount = %d", m.ResultCount)
	}
	if m.AvgScore != 0.8 {
		t.Errorf("AvgScore = %f", m.AvgScore)
	}
	if m.TotalContentChars != 4000 {
		t.Errorf("TotalContentChars = %d", m.TotalContentChars)
	}
	if m.AvgContentChars != 1000 {
		t.Errorf("AvgContentChars = %d", m.AvgContentChars)
	}
	if !m.ContentReady {
		t.Error("Expected ContentReady with 1000-char bodies")
	}
	if m.APICallsNeeded != 1 {
		t.Errorf("APICallsNeeded = %d", m.APICallsNeeded)
	}
}

func TestForTraditional(t *testing.T) {
	m := ForTraditional(contentResults(5, 0))

	if m.ContentReady {
		t.Error("Snippet-only results must not be content-ready")
	}
	if m.APICallsNeeded != 6 {
		t.Errorf("APICallsNeeded = %d, want 1 search + 5 scrapes", m.APICallsNeeded)
	}
	if m.TotalSnippetChars != 5*len("short snippet") {
		t.Errorf("TotalSnippetChars = %d", m.TotalSnippetChars)
	}
}

func TestEmptyResults(t *testing.T) {
	m := ForNeural(nil)
	if m.ResultCount != 0 || m.AvgScore != 0 || m.ContentReady {
		t.Errorf("Unexpected metrics for empty results: %+v", m)
	}
}

func TestCompare(t *testing.T) {
	neural := ForNeural(contentResults(5, 2000))
	trad := ForTraditional(contentResults(5, 0))

	c := Compare(neural, trad)

	if c.RAGReadyProvider != "neural" {
		t.Errorf("RAGReadyProvider = %q", c.RAGReadyProvider)
	}
	if c.APICallAdvantage != 5 {
		t.Errorf("APICallAdvantage = %d", c.APICallAdvantage)
	}
	if c.ContentVolumeRatio <= 1 {
		t.Errorf("ContentVolumeRatio = %f, expected > 1", c.ContentVolumeRatio)
	}
	if len(c.Insights) == 0 {
		t.Error("Expected insights")
	}
}

func TestCompareNeitherReady(t *testing.T) {
	neural := ForNeural(contentResults(2, 10))
	trad := ForTraditional(contentResults(2, 0))

	c := Compare(neural, trad)
	if c.RAGReadyProvider != "neither" {
		t.Errorf("RAGReadyProvider = %q", c.RAGReadyProvider)
	}
}
