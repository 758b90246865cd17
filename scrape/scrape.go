// Package scrape provides product scraping orchestration.
// It coordinates fetching, extraction, and optional raw-page dumping
// for one or many ASINs.
package scrape

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	dibkb "github.com/dibkb/dibkb-scraper"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of ASINs processed in parallel by
// ScrapeBatch when no explicit concurrency is configured.
const DefaultConcurrency = 10

// Scraper orchestrates the scraping of product pages.
type Scraper struct {
	Fetcher     dibkb.Fetcher
	Extractor   dibkb.ProductExtractor
	Dumps       dibkb.DumpWriter // optional; raw page dumps when set
	Logger      *slog.Logger     // optional; retry attempts when set
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a batch scrape.
type Result struct {
	Scraped int
	Failed  int
	Bytes   int
}

// ProgressEvent reports progress during a batch scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	ASIN      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of processing a single ASIN.
type scrapeResult struct {
	position int
	asin     string
	response *dibkb.ProductResponse
	bytes    int
	err      error
}

// ScrapeProduct fetches and extracts a single product page. A fetch failure
// never surfaces as an error; it yields a response whose Error field is set
// and whose product is empty, so callers always get a well-formed response
// per ASIN.
func (s *Scraper) ScrapeProduct(ctx context.Context, asin string) *dibkb.ProductResponse {
	result := s.processASIN(ctx, 0, asin)
	return result.response
}

// ScrapeBatch scrapes all given ASINs concurrently and returns one response
// per ASIN, in input order. Individual failures never abort the batch.
// The progress callback, if provided, receives events as scraping proceeds.
func (s *Scraper) ScrapeBatch(ctx context.Context, asins []string, progress ProgressFunc) ([]*dibkb.ProductResponse, *Result, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan scrapeResult, len(asins))

	var completed atomic.Int64
	total := len(asins)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, asin := range asins {
			i, asin := i, asin
			g.Go(func() error {
				result := s.processASIN(gctx, i, asin)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in input order
	results := make([]scrapeResult, len(asins))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				ASIN:      result.asin,
			}
			if result.err != nil {
				event.Type = ProgressFailed
				event.Error = result.err
			}
			progress(event)
		}
	}

	responses := make([]*dibkb.ProductResponse, len(asins))
	var stats Result
	for i, result := range results {
		responses[i] = result.response
		if result.err != nil {
			stats.Failed++
			continue
		}
		stats.Scraped++
		stats.Bytes += result.bytes
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return responses, &stats, nil
}

// processASIN fetches and extracts a single product page.
func (s *Scraper) processASIN(ctx context.Context, position int, asin string) scrapeResult {
	result := scrapeResult{
		position: position,
		asin:     asin,
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return s.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, dibkb.ProductURL(asin), fetchFn, s.Logger, delays)
	if err != nil {
		result.err = err
		result.response = s.Extractor.Extract("")
		return result
	}

	if s.Dumps != nil {
		// Dump failures are non-fatal; the extraction still proceeds.
		_, _ = s.Dumps.WriteDump(ctx, asin, html)
	}

	result.response = s.Extractor.Extract(html)
	result.bytes = len(html)
	return result
}
