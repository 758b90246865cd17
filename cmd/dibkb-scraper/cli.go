package main

import (
	"context"
	"io"

	"github.com/dibkb/dibkb-scraper/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scraper *scrape.Scraper
}

// ScrapeCmd handles the scrape operation.
type ScrapeCmd struct {
	ASINs  []string
	Pretty bool
	Quiet  bool
}
