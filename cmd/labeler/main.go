// Package main provides the interactive labeling tool for classifying
// crawled articles as labour unrest events.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"ergatika/internal/crawler"
	"ergatika/internal/formatter"
	"ergatika/internal/labels"
	"ergatika/internal/models"
	"ergatika/pkg/utils"
)

const (
	defaultArticlesFile = "articles_week.json"
	defaultLabelsFile   = "labels.json"
	exportFile          = "codex_labeling_task.md"

	bodyPreviewLines = 15
	exportLimit      = 10
)

func main() {
	articlesFile := flag.String("articles", defaultArticlesFile, "Path to the crawled articles JSON array")
	labelsFile := flag.String("labels", defaultLabelsFile, "Path to the labels JSON file")
	flag.Parse()

	articles, err := crawler.LoadArticles(*articlesFile)
	if err != nil {
		log.Fatalf("❌ Failed to load articles: %v\n", err)
	}

	store, err := labels.Load(*labelsFile)
	if err != nil {
		log.Fatalf("❌ Failed to load labels: %v\n", err)
	}

	fmt.Printf("Loaded %d articles, %d already labeled.\n", len(articles), len(store))
	fmt.Println("\nOptions:")
	fmt.Println("  1. Label unlabeled articles")
	fmt.Println("  2. Re-label specific article by number")
	fmt.Println("  3. Show labeling stats")
	fmt.Println("  4. Export for CLI labeling")
	fmt.Println("  q. Quit")

	reader := bufio.NewReader(os.Stdin)

	switch readLine(reader, "\nChoice: ") {
	case "1":
		labelUnlabeled(reader, articles, store, *labelsFile)
	case "2":
		relabelByNumber(reader, articles, store, *labelsFile)
	case "3":
		showStats(reader, articles, store)
	case "4":
		exportForCLI(articles, store)
	}

	fmt.Println("Done.")
}

func labelUnlabeled(reader *bufio.Reader, articles []models.Article, store labels.Store, labelsFile string) {
	for i, article := range articles {
		if _, labeled := store[article.URL]; labeled {
			continue
		}

		displayArticle(article, i, len(articles), nil)

		action := strings.ToLower(readLine(reader, "Label this article? (y/n/q): "))
		if action == "q" {
			break
		}

		if action != "y" {
			continue
		}

		if label, ok := labelArticle(reader, article); ok {
			store.Set(label)

			if err := store.Save(labelsFile); err != nil {
				log.Fatalf("❌ Failed to save labels: %v\n", err)
			}

			fmt.Println("\nLabel saved!")
		}

		readLine(reader, "Press Enter to continue...")
	}
}

func relabelByNumber(reader *bufio.Reader, articles []models.Article, store labels.Store, labelsFile string) {
	num, err := strconv.Atoi(readLine(reader, "Article number (1-based): "))
	if err != nil || num < 1 || num > len(articles) {
		return
	}

	article := articles[num-1]

	var existing *models.Label
	if label, ok := store[article.URL]; ok {
		existing = &label
	}

	displayArticle(article, num-1, len(articles), existing)

	if label, ok := labelArticle(reader, article); ok {
		store.Set(label)

		if err := store.Save(labelsFile); err != nil {
			log.Fatalf("❌ Failed to save labels: %v\n", err)
		}

		fmt.Println("\nLabel saved!")
	}
}

func showStats(reader *bufio.Reader, articles []models.Article, store labels.Store) {
	counts := store.CountByClassification()

	rows := [][]string{
		{"Total labeled", fmt.Sprintf("%d/%d", len(store), len(articles))},
		{"Labour unrest (yes)", strconv.Itoa(counts["yes"])},
		{"Not labour unrest (no)", strconv.Itoa(counts["no"])},
		{"Remaining", strconv.Itoa(len(store.Unlabeled(articles)))},
	}

	fmt.Println()
	fmt.Print(formatter.FormatTable([]string{"Metric", "Count"}, rows))
	readLine(reader, "\nPress Enter to continue...")
}

// displayArticle clears the screen and shows one article with its
// metadata aligned and the body truncated to a preview.
func displayArticle(article models.Article, index, total int, existing *models.Label) {
	fmt.Print("\033[H\033[2J")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("ARTICLE %d/%d\n", index+1, total)
	fmt.Println(strings.Repeat("=", 80))

	rows := [][]string{
		{"URL", formatter.FitWidth(article.URL, 70)},
		{"Published", article.PublishedAt.Format(models.MinuteLayout)},
		{"Tags", formatter.FitWidth(strings.Join(article.Tags, ", "), 70)},
	}

	fmt.Println()
	fmt.Print(formatter.FormatTable([]string{"Field", "Value"}, rows))

	fmt.Printf("\n--- TITLE ---\n%s\n", article.Title)
	fmt.Printf("\n--- BODY (preview) ---\n%s\n", utils.TruncateLines(article.Body, bodyPreviewLines))
	fmt.Println("\n" + strings.Repeat("=", 80))

	if existing != nil {
		fmt.Println("\n[EXISTING LABEL]")
		fmt.Printf("  strike_or_labour_unrest: %s\n", existing.StrikeOrLabourUnrest)
		fmt.Printf("  event_type: %s\n", existing.EventType)
		fmt.Printf("  sector: %s\n", existing.Sector)
		fmt.Printf("  scope: %s\n", existing.Scope)
	}

	fmt.Println()
}

// labelArticle walks the label schema interactively. The second return
// is false when the user quits mid-article.
func labelArticle(reader *bufio.Reader, article models.Article) (models.Label, bool) {
	schema := labels.DefaultSchema()
	label := models.Label{URL: article.URL}

	choice, quit := promptChoice(reader, "Is this about a strike or labour unrest?", schema.StrikeOrLabourUnrest)
	if quit {
		return models.Label{}, false
	}

	label.StrikeOrLabourUnrest = choice
	if label.StrikeOrLabourUnrest == "" {
		label.StrikeOrLabourUnrest = "unknown"
	}

	if label.StrikeOrLabourUnrest == "yes" {
		if label.EventType, quit = promptChoice(reader, "Event type:", schema.EventType); quit {
			return models.Label{}, false
		}

		if label.Sector, quit = promptChoice(reader, "Sector:", schema.Sector); quit {
			return models.Label{}, false
		}

		if label.Scope, quit = promptChoice(reader, "Scope:", schema.Scope); quit {
			return models.Label{}, false
		}

		label.ActionDate = readLine(reader, "\nAction date (YYYY-MM-DD or leave empty): ")
		label.Location = readLine(reader, "Location (city/region or leave empty): ")
		label.PrimaryActor = readLine(reader, "Primary actor (union/company or leave empty): ")
	}

	label.LabeledAt = time.Now().Format(time.RFC3339)

	return label, true
}

// promptChoice presents numbered options; "s" skips the field, "q"
// quits the article. The second return reports a quit.
func promptChoice(reader *bufio.Reader, prompt string, options []string) (string, bool) {
	fmt.Printf("\n%s\n", prompt)

	for i, opt := range options {
		fmt.Printf("  %d. %s\n", i+1, opt)
	}

	fmt.Println("  s. Skip this field")
	fmt.Println("  q. Quit labeling this article")

	for {
		choice := strings.ToLower(readLine(reader, "Choice: "))

		switch choice {
		case "s":
			return "", false
		case "q":
			return "", true
		}

		if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], false
		}

		fmt.Println("Invalid choice, try again.")
	}
}

// exportForCLI writes unlabeled articles as a markdown labeling task
// for CLI coding agents.
func exportForCLI(articles []models.Article, store labels.Store) {
	unlabeled := store.Unlabeled(articles)
	if len(unlabeled) == 0 {
		fmt.Println("All articles are labeled!")

		return
	}

	if len(unlabeled) > exportLimit {
		unlabeled = unlabeled[:exportLimit]
	}

	schema, err := json.MarshalIndent(labels.DefaultSchema(), "", "  ")
	if err != nil {
		log.Fatalf("❌ Failed to marshal schema: %v\n", err)
	}

	var b strings.Builder

	b.WriteString("# CLI Labeling Task\n\n")
	b.WriteString("Label each article below using the JSON schema.\n\n")
	b.WriteString("## Label Schema\n```json\n")
	b.Write(schema)
	b.WriteString("\n```\n\n")
	b.WriteString("## Articles to Label\n\n")

	for i, article := range unlabeled {
		b.WriteString(fmt.Sprintf("### Article %d\n", i+1))
		b.WriteString(fmt.Sprintf("- URL: %s\n", article.URL))
		b.WriteString(fmt.Sprintf("- Title: %s\n", article.Title))
		b.WriteString(fmt.Sprintf("- Published: %s\n", article.PublishedAt.Format(models.MinuteLayout)))
		b.WriteString(fmt.Sprintf("- Body: %s\n\n", utils.TruncateLines(article.Body, 10)))
	}

	if err := os.WriteFile(exportFile, []byte(b.String()), 0644); err != nil {
		log.Fatalf("❌ Failed to write export: %v\n", err)
	}

	fmt.Printf("Exported %d articles to %s\n", len(unlabeled), exportFile)
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)

	line, _ := reader.ReadString('\n')

	return strings.TrimSpace(line)
}
