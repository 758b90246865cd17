package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	dibkb "github.com/dibkb/dibkb-scraper"
	"github.com/dibkb/dibkb-scraper/fs"
	"github.com/dibkb/dibkb-scraper/goquery"
	dibkbhttp "github.com/dibkb/dibkb-scraper/http"
	"github.com/dibkb/dibkb-scraper/rod"
	"github.com/dibkb/dibkb-scraper/scrape"
	dibkbslog "github.com/dibkb/dibkb-scraper/slog"
)

func main() {
	// Optional .env for local overrides of DIBKB_* settings
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dibkb-scraper"),
		kong.Description("Extract structured product data from product pages"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	timeout := cli.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	// Wire the fetcher: headless browser when requested, plain HTTP otherwise
	var fetcher dibkb.Fetcher
	if cli.Browser {
		rodFetcher, err := rod.NewFetcher(rod.WithFetchTimeout(timeout))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = rod.NewLoggingFetcher(rodFetcher, logger)
	} else {
		fetcher = rod.NewLoggingFetcher(dibkbhttp.NewFetcher(dibkbhttp.WithTimeout(timeout)), logger)
	}
	defer fetcher.Close()

	scraper := &scrape.Scraper{
		Fetcher:     fetcher,
		Extractor:   dibkbslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Logger:      logger,
		Concurrency: cli.Concurrency,
	}
	if cli.Dump != "" {
		scraper.Dumps = fs.NewWriter(cli.Dump)
	}

	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Scraper: scraper,
	}

	cmd := &ScrapeCmd{
		ASINs:  cli.ASINs,
		Pretty: cli.Pretty,
		Quiet:  cli.Quiet,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Browser     bool          `short:"b" env:"DIBKB_BROWSER" help:"Fetch with a headless browser instead of plain HTTP"`
	Dump        string        `short:"d" env:"DIBKB_DUMP_DIR" help:"Directory for raw HTML dumps (disabled when empty)"`
	Concurrency int           `short:"c" env:"DIBKB_CONCURRENCY" default:"10" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" env:"DIBKB_TIMEOUT" default:"10s" help:"Fetch timeout per page"`
	Pretty      bool          `help:"Indent the JSON output"`
	Quiet       bool          `short:"q" help:"Suppress progress output"`
	Verbose     bool          `short:"v" help:"Log fetch and extraction details"`
	ASINs       []string      `arg:"" required:"" name:"asin" help:"Product ASINs to scrape"`
}
