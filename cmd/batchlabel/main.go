// Package main provides the batch labeling helper: it generates
// request payloads for an external labeler, imports its results into
// the label store, and reports progress.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"ergatika/internal/crawler"
	"ergatika/internal/formatter"
	"ergatika/internal/labels"
	"ergatika/internal/payload"
)

const (
	defaultArticlesFile = "articles_week.json"
	defaultLabelsFile   = "labels.json"
	defaultBatchFile    = "codex_batch.json"
	defaultOutputFile   = "codex_output.json"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		runGenerate(os.Args[2:])
	case "import":
		runImport(os.Args[2:])
	case "progress":
		runProgress(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func runGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	articlesFile := fs.String("articles", defaultArticlesFile, "Path to the crawled articles JSON array")
	labelsFile := fs.String("labels", defaultLabelsFile, "Path to the labels JSON file")
	batchSize := fs.Int("batch-size", 5, "Number of articles per batch")
	batchFile := fs.String("output", defaultBatchFile, "Batch payload output path")
	fs.Parse(args)

	articles, err := crawler.LoadArticles(*articlesFile)
	if err != nil {
		log.Fatalf("❌ Failed to load articles: %v\n", err)
	}

	store, err := labels.Load(*labelsFile)
	if err != nil {
		log.Fatalf("❌ Failed to load labels: %v\n", err)
	}

	batch := payload.BuildBatch(articles, store, *batchSize)
	if batch == nil {
		fmt.Println("All articles are already labeled!")

		return
	}

	if err := batch.Save(*batchFile); err != nil {
		log.Fatalf("❌ Failed to save batch: %v\n", err)
	}

	fmt.Printf("Generated batch with %d articles in %s\n", len(batch.Articles), *batchFile)
	fmt.Printf("\nLabel the batch externally, then import the results:\n")
	fmt.Printf("  ./bin/batchlabel import -input %s\n", defaultOutputFile)
}

func runImport(args []string) {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	labelsFile := fs.String("labels", defaultLabelsFile, "Path to the labels JSON file")
	inputFile := fs.String("input", defaultOutputFile, "Labeling result file to import")
	fs.Parse(args)

	data, err := os.ReadFile(*inputFile)
	if err != nil {
		log.Fatalf("❌ No result file: %v\n", err)
	}

	store, err := labels.Load(*labelsFile)
	if err != nil {
		log.Fatalf("❌ Failed to load labels: %v\n", err)
	}

	merged, err := store.Import(data)
	if err != nil {
		log.Fatalf("❌ Import failed: %v\n", err)
	}

	if err := store.Save(*labelsFile); err != nil {
		log.Fatalf("❌ Failed to save labels: %v\n", err)
	}

	fmt.Printf("Imported %d labels. Total: %d\n", merged, len(store))
}

func runProgress(args []string) {
	fs := flag.NewFlagSet("progress", flag.ExitOnError)
	articlesFile := fs.String("articles", defaultArticlesFile, "Path to the crawled articles JSON array")
	labelsFile := fs.String("labels", defaultLabelsFile, "Path to the labels JSON file")
	fs.Parse(args)

	articles, err := crawler.LoadArticles(*articlesFile)
	if err != nil {
		log.Fatalf("❌ Failed to load articles: %v\n", err)
	}

	store, err := labels.Load(*labelsFile)
	if err != nil {
		log.Fatalf("❌ Failed to load labels: %v\n", err)
	}

	counts := store.CountByClassification()
	remaining := len(store.Unlabeled(articles))

	percent := 0.0
	if len(articles) > 0 {
		percent = 100 * float64(len(store)) / float64(len(articles))
	}

	fmt.Printf("Progress: %d/%d articles labeled (%.1f%%)\n\n", len(store), len(articles), percent)

	rows := [][]string{
		{"Labour unrest (yes)", strconv.Itoa(counts["yes"])},
		{"Not labour unrest (no)", strconv.Itoa(counts["no"])},
		{"Remaining", strconv.Itoa(remaining)},
	}

	fmt.Print(formatter.FormatTable([]string{"Classification", "Count"}, rows))
}

func printUsage() {
	fmt.Println("Usage: ./bin/batchlabel <command> [OPTIONS]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  generate   Generate a labeling batch for an external labeler")
	fmt.Println("  import     Import labeling results into the label store")
	fmt.Println("  progress   Show labeling progress")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/batchlabel generate -batch-size 5")
	fmt.Println("  ./bin/batchlabel import -input codex_output.json")
	fmt.Println("  ./bin/batchlabel progress")
}
