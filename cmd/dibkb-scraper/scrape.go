package main

import (
	"encoding/json"
	"fmt"

	"github.com/dibkb/dibkb-scraper/scrape"
)

// Run executes the scrape command. Results are printed to stdout as JSON:
// a single object for one ASIN, an array otherwise.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	var progress scrape.ProgressFunc
	if !c.Quiet {
		progress = func(p scrape.ProgressEvent) {
			switch p.Type {
			case scrape.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "skip %s: %v\n", p.ASIN, p.Error)
			case scrape.ProgressFinished:
				fmt.Fprintf(deps.Stderr, "scraped %d/%d\n", p.Completed, p.Total)
			}
		}
	}

	responses, stats, err := deps.Scraper.ScrapeBatch(deps.Ctx, c.ASINs, progress)
	if err != nil {
		return err
	}

	var out any = responses
	if len(responses) == 1 {
		out = responses[0]
	}

	enc := json.NewEncoder(deps.Stdout)
	if c.Pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if !c.Quiet && stats.Bytes > 0 {
		fmt.Fprintf(deps.Stderr, "fetched %s\n", scrape.FormatBytes(stats.Bytes))
	}

	return nil
}
