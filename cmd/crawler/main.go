// Package main provides the crawler command-line tool for extracting
// article records from the 902.gr labour section.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"ergatika/internal/config"
	"ergatika/internal/crawler"
	"ergatika/internal/logger"
	"ergatika/internal/validator"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (optional)")
	days := flag.Int("days", 0, "Scrape articles from the last N days")
	since := flag.String("since", "", "Scrape articles since date (YYYY-MM-DD)")
	pages := flag.Int("pages", 0, "Scrape exactly N pages")
	output := flag.String("output", "", "Output JSON file path (default: print to stdout)")
	showValidation := flag.Bool("validate", false, "Validate records before writing")
	verbose := flag.Bool("verbose", false, "Print progress")
	showUsage := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *showUsage {
		printUsage()
		os.Exit(0)
	}

	cfg := config.DefaultConfig()

	if *configFile != "" {
		loaded, err := config.LoadConfig(*configFile)
		if err != nil {
			log.Fatalf("❌ Failed to load config: %v\n", err)
		}

		cfg = loaded
	}

	// The run must be bounded before any network activity happens.
	opts, cutoff, err := buildOptions(*days, *since, *pages)
	if err != nil {
		log.Fatalf("❌ %v\n", err)
	}

	lg := logger.NewLogger(cfg.Crawler.Logging.Level, *verbose || cfg.Crawler.Logging.ShowProgress)

	if cutoff != nil {
		lg.Progressf("Scraping articles since %s", cutoff.Format("2006-01-02"))
	}

	if *pages > 0 {
		lg.Progressf("Scraping %d pages", *pages)
	}

	session := crawler.NewSession(cfg)
	controller := crawler.NewController(cfg, session.Fetch, lg)

	articles, err := controller.Run(opts)
	if err != nil {
		log.Fatalf("❌ Crawl failed: %v\n", err)
	}

	lg.Progressf("\nTotal articles: %d", len(articles))

	if *showValidation {
		result := validator.Validate(articles, cutoff)
		result.PrintWarnings()

		if !result.IsValid {
			result.PrintErrors()
			log.Fatalf("❌ %s\n", result)
		}

		lg.Progressf("%s", result.String())
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = cfg.Crawler.Output.Path
	}

	if outputPath == "" {
		data, err := crawler.EncodeArticles(articles, cfg.Crawler.Output.PrettyPrint)
		if err != nil {
			log.Fatalf("❌ %v\n", err)
		}

		os.Stdout.Write(data)

		return
	}

	if err := crawler.SaveArticles(articles, outputPath, cfg.Crawler.Output.PrettyPrint); err != nil {
		log.Fatalf("❌ Save failed: %v\n", err)
	}

	fmt.Printf("✅ Saved %d articles to: %s\n", len(articles), outputPath)
}

// buildOptions converts the CLI bounds into crawl options. Exactly one
// of days, since, or pages must be set.
func buildOptions(days int, since string, pages int) (crawler.Options, *time.Time, error) {
	bounds := 0
	for _, set := range []bool{days > 0, since != "", pages > 0} {
		if set {
			bounds++
		}
	}

	if bounds != 1 {
		return crawler.Options{}, nil, fmt.Errorf("specify exactly one of: -days, -since, or -pages")
	}

	var cutoff *time.Time

	switch {
	case since != "":
		t, err := time.Parse("2006-01-02", since)
		if err != nil {
			return crawler.Options{}, nil, fmt.Errorf("invalid -since date %q: %v", since, err)
		}

		cutoff = &t
	case days > 0:
		t := time.Now().AddDate(0, 0, -days)
		cutoff = &t
	}

	return crawler.Options{Cutoff: cutoff, MaxPages: pages}, cutoff, nil
}

func printUsage() {
	fmt.Println("Usage: ./bin/crawler [OPTIONS]")
	fmt.Println()
	fmt.Println("Scrapes news articles from the 902.gr labour section.")
	fmt.Println("The run must be bounded by exactly one of -days, -since, or -pages.")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/crawler -days 7 -output articles_week.json")
	fmt.Println("  ./bin/crawler -since 2024-01-01 -output articles.json -verbose")
	fmt.Println("  ./bin/crawler -pages 50 > bulk.json")
}
