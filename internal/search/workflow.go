package search

// TraditionalWorkflowSteps lists what a RAG pipeline built on a traditional
// search API has to do to end up with usable content. Shown under the
// traditional panel.
func TraditionalWorkflowSteps() []string {
	return []string{
		"Call search API (Google, Bing, SerpAPI)",
		"Get URLs and short snippets",
		"For each URL, you need to scrape the page (requests, selenium), parse HTML (BeautifulSoup, lxml), extract main content (custom logic), clean and format text and handle errors (404s, timeouts, paywalls)",
		"Filter and rank extracted content",
		"Optimize for LLM context window",
		"Finally get RAG-ready content",
	}
}

// TraditionalWorkflowProblems lists the operational costs of that workflow.
func TraditionalWorkflowProblems() []string {
	return []string{
		"Multiple API calls required",
		"Complex scraping logic needed",
		"Error handling for each website",
		"Content extraction varies by site",
		"High latency (serial scraping)",
		"Maintenance burden (site changes)",
		"Rate limiting concerns",
		"Extra infrastructure needed",
	}
}
