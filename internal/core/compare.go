package core

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"searchlens/internal/metrics"
	"searchlens/internal/search"
)

// Panel is one provider's side of the comparison. Err is non-nil when the
// provider failed; the other panel is unaffected.
type Panel struct {
	Provider string
	Response search.Response
	Metrics  metrics.ProviderMetrics
	Err      error
}

// Comparison pairs the two panels for one query, with the AI answer and
// the cross-provider insights. It lives for one request.
type Comparison struct {
	Query       string
	Neural      Panel
	Traditional Panel
	Answer      search.Answer
	AnswerErr   error
	Insights    metrics.Comparison
}

// CompareCore executes the side-by-side search. Both provider calls run
// concurrently under their own timeout.
type CompareCore struct {
	neural      search.Provider
	traditional search.Provider
	answerer    search.AnswerProvider
	timeout     time.Duration
}

// NewCompareCore creates the comparison core. answerer may be nil when the
// neural provider has no answer endpoint.
func NewCompareCore(neural, traditional search.Provider, answerer search.AnswerProvider, timeout time.Duration) *CompareCore {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &CompareCore{
		neural:      neural,
		traditional: traditional,
		answerer:    answerer,
		timeout:     timeout,
	}
}

// Compare fans the query out to both providers and the answer endpoint.
// A provider failure is recorded on its panel, never returned: the caller
// always gets both panels back. Only an empty query is an error, and no
// provider is called for it.
func (c *CompareCore) Compare(ctx context.Context, query string, maxResults int) (Comparison, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Comparison{}, fmt.Errorf("query is required")
	}

	cmp := Comparison{
		Query:       query,
		Neural:      Panel{Provider: c.neural.Name()},
		Traditional: Panel{Provider: c.traditional.Name()},
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		cmp.Neural.Response, cmp.Neural.Err = c.neural.Search(callCtx, query, maxResults)
	}()

	go func() {
		defer wg.Done()
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		cmp.Traditional.Response, cmp.Traditional.Err = c.traditional.Search(callCtx, query, maxResults)
	}()

	if c.answerer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, c.timeout)
			defer cancel()
			cmp.Answer, cmp.AnswerErr = c.answerer.Answer(callCtx, query)
		}()
	}

	wg.Wait()

	if cmp.Neural.Err != nil {
		log.Printf("[Compare] %s failed: %v", cmp.Neural.Provider, cmp.Neural.Err)
	}
	if cmp.Traditional.Err != nil {
		log.Printf("[Compare] %s failed: %v", cmp.Traditional.Provider, cmp.Traditional.Err)
	}
	if cmp.AnswerErr != nil {
		// Answer failure is non-fatal; the panel just has no AI answer
		log.Printf("[Compare] answer failed: %v", cmp.AnswerErr)
	}

	cmp.Neural.Metrics = metrics.ForNeural(cmp.Neural.Response.Results)
	cmp.Traditional.Metrics = metrics.ForTraditional(cmp.Traditional.Response.Results)
	cmp.Insights = metrics.Compare(cmp.Neural.Metrics, cmp.Traditional.Metrics)

	return cmp, nil
}

// Failed reports whether both providers failed, which is the only case the
// HTTP layer treats as a request-level error.
func (cmp Comparison) Failed() bool {
	return cmp.Neural.Err != nil && cmp.Traditional.Err != nil
}
