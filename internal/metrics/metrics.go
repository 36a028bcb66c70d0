package metrics

import (
	"fmt"

	"searchlens/internal/search"
)

// A provider's content is considered RAG-ready when at least one result
// carries a substantial extracted body, not just a snippet.
const contentReadyThreshold = 500

// ProviderMetrics summarizes one provider's retrieval quality for a query
type ProviderMetrics struct {
	ResultCount       int     `json:"result_count"`
	AvgScore          float64 `json:"avg_score"`
	TotalContentChars int     `json:"total_content_chars"`
	AvgContentChars   int     `json:"avg_content_chars"`
	TotalSnippetChars int     `json:"total_snippet_chars"`
	ContentReady      bool    `json:"content_ready"`
	// APICallsNeeded counts the requests required to end up with usable
	// content: one for a contents-inclusive API, 1+N for snippet APIs
	// that force a scrape per result.
	APICallsNeeded int `json:"api_calls_needed"`
}

// Comparison holds the cross-provider insights for one query
type Comparison struct {
	ContentVolumeRatio float64  `json:"content_volume_ratio"`
	APICallAdvantage   int      `json:"api_call_advantage"`
	RAGReadyProvider   string   `json:"rag_ready_provider"`
	Insights           []string `json:"insights"`
}

// ForNeural computes metrics for a provider whose results include
// extracted content (a single API call covers search and contents).
func ForNeural(results []search.Result) ProviderMetrics {
	m := base(results)
	m.APICallsNeeded = 1
	return m
}

// ForTraditional computes metrics for a snippet-only provider. Every
// result would need a separate scrape to obtain content.
func ForTraditional(results []search.Result) ProviderMetrics {
	m := base(results)
	m.APICallsNeeded = 1 + len(results)
	return m
}

func base(results []search.Result) ProviderMetrics {
	m := ProviderMetrics{ResultCount: len(results)}
	if len(results) == 0 {
		return m
	}

	var scoreSum float64
	for _, r := range results {
		scoreSum += r.Score
		m.TotalContentChars += len(r.Content)
		m.TotalSnippetChars += len(r.Snippet)
		if len(r.Content) >= contentReadyThreshold {
			m.ContentReady = true
		}
	}
	m.AvgScore = scoreSum / float64(len(results))
	m.AvgContentChars = m.TotalContentChars / len(results)
	return m
}

// Compare derives cross-provider insights from both metric sets. The
// neural provider is the one returning extracted content.
func Compare(neural, traditional ProviderMetrics) Comparison {
	c := Comparison{
		APICallAdvantage: traditional.APICallsNeeded - neural.APICallsNeeded,
	}

	neuralChars := neural.TotalContentChars
	tradChars := traditional.TotalContentChars + traditional.TotalSnippetChars
	if tradChars > 0 {
		c.ContentVolumeRatio = float64(neuralChars) / float64(tradChars)
	}

	switch {
	case neural.ContentReady && !traditional.ContentReady:
		c.RAGReadyProvider = "neural"
	case traditional.ContentReady && !neural.ContentReady:
		c.RAGReadyProvider = "traditional"
	case neural.ContentReady && traditional.ContentReady:
		c.RAGReadyProvider = "both"
	default:
		c.RAGReadyProvider = "neither"
	}

	if c.ContentVolumeRatio > 1 {
		c.Insights = append(c.Insights, fmt.Sprintf(
			"Neural search returned %.0fx more usable content per query", c.ContentVolumeRatio))
	}
	if c.APICallAdvantage > 0 {
		c.Insights = append(c.Insights, fmt.Sprintf(
			"Traditional search needs %d extra requests (one scrape per result) to match", c.APICallAdvantage))
	}
	if neural.ContentReady {
		c.Insights = append(c.Insights,
			"Neural results include extracted page content, ready for an LLM context window")
	}
	if !traditional.ContentReady && traditional.ResultCount > 0 {
		c.Insights = append(c.Insights,
			"Traditional results carry only short snippets; full content requires scraping each URL")
	}

	return c
}
