package crawler

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"ergatika/internal/config"
	"ergatika/internal/models"
	"ergatika/pkg/utils"
)

// timestampPattern matches the site's "DD/MM/YYYY - HH:MM" publication stamps.
var timestampPattern = regexp.MustCompile(`\b(\d{2}/\d{2}/\d{4})\s*-\s*(\d{2}:\d{2})\b`)

// publishedAtLayout parses the two captured groups as day-first date plus time.
const publishedAtLayout = "02/01/2006 15:04"

// tagAnchorSelector matches anchors that resemble category/tag/taxonomy links.
const tagAnchorSelector = `a[href*="/taxonomy/term/"], a[href*="/tags/"], a[href*="/tag/"]`

// Window sizes for the positional heuristics, counted in text entries
// around the title's position.
const (
	timestampWindow = 15
	tagWindow       = 10
)

// Tag candidate length bounds, in runes.
const (
	minTagLen = 2
	maxTagLen = 50
)

// Extractor turns one article document into a structured record using
// positional heuristics anchored at the title's index within the
// flattened visible text. The site's markup offers no reliable selector
// for date or body, so everything hangs off reading order instead;
// robust to markup churn, fragile if reading order changes.
type Extractor struct {
	titleSuffix string
	stopMarkers map[string]struct{}
	noise       map[string]struct{}
}

// NewExtractor creates an extractor for the configured site.
func NewExtractor(site config.SiteConfig) *Extractor {
	return &Extractor{
		titleSuffix: site.TitleSuffix,
		stopMarkers: toSet(site.StopMarkers),
		noise:       toSet(site.NoiseStrings),
	}
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, s := range items {
		set[s] = struct{}{}
	}

	return set
}

// Extract produces a record for the article document, or nil when no
// publication timestamp can be recovered.
func (e *Extractor) Extract(doc *goquery.Document, pageURL string) *models.Article {
	region := mainRegion(doc)
	entries := FlattenText(region)
	title := e.NormalizeTitle(doc.Find("title").First().Text())

	publishedAt, ok := PickPublishedAt(entries, title)
	if !ok {
		return nil
	}

	return &models.Article{
		URL:         pageURL,
		Title:       title,
		PublishedAt: models.NewMinuteTime(publishedAt),
		Tags:        e.ExtractTags(region, entries, title),
		Body:        e.ExtractBody(entries, title),
	}
}

// mainRegion returns the main content region, or the whole document
// when the page has no <main> element.
func mainRegion(doc *goquery.Document) *goquery.Selection {
	if main := doc.Find("main").First(); main.Length() > 0 {
		return main
	}

	return doc.Selection
}

// NormalizeTitle trims the title and strips the site-suffix decoration
// when present.
func (e *Extractor) NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if e.titleSuffix != "" && strings.HasSuffix(title, e.titleSuffix) {
		title = strings.TrimSpace(strings.TrimSuffix(title, e.titleSuffix))
	}

	return title
}

// FlattenText collects every non-empty, whitespace-stripped visible
// text node under the selection in reading order. This sequence is the
// substrate for all positional heuristics.
func FlattenText(sel *goquery.Selection) []string {
	var entries []string

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "noscript") {
			return
		}

		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				entries = append(entries, text)
			}

			return
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}

	return entries
}

// PickPublishedAt recovers the publication timestamp from the flattened
// text. If the title appears verbatim, a window of entries around it is
// searched first; otherwise the whole sequence is scanned for the first
// match. Returns false when no entry matches anywhere.
func PickPublishedAt(entries []string, title string) (time.Time, bool) {
	if title != "" {
		if i := indexOf(entries, title); i >= 0 {
			lo := max(0, i-timestampWindow)
			hi := min(len(entries), i+timestampWindow)

			if t, ok := scanTimestamp(entries[lo:hi]); ok {
				return t, true
			}
		}
	}

	return scanTimestamp(entries)
}

func scanTimestamp(entries []string) (time.Time, bool) {
	for _, s := range entries {
		m := timestampPattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}

		t, err := time.Parse(publishedAtLayout, m[1]+" "+m[2])
		if err != nil {
			continue
		}

		return t, true
	}

	return time.Time{}, false
}

// ExtractBody accumulates the entries following the title, skipping
// social-share noise, until a stop marker or the end of the sequence.
// Returns "" when the title cannot be located or nothing accumulates.
func (e *Extractor) ExtractBody(entries []string, title string) string {
	if title == "" {
		return ""
	}

	i := indexOf(entries, title)
	if i < 0 {
		return ""
	}

	var kept []string

	for _, s := range entries[i+1:] {
		if _, stop := e.stopMarkers[s]; stop {
			break
		}

		if _, skip := e.noise[s]; skip {
			continue
		}

		kept = append(kept, s)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// ExtractTags returns the article's tags. Taxonomy-style anchors inside
// the content region win; failing that, the entries just before the
// title are scanned in reverse for a single all-caps section label.
func (e *Extractor) ExtractTags(region *goquery.Selection, entries []string, title string) []string {
	tags := []string{}
	seen := make(map[string]struct{})

	region.Find(tagAnchorSelector).Each(func(_ int, a *goquery.Selection) {
		text := utils.NormalizeWhitespace(a.Text())
		if text == "" {
			return
		}

		if _, dup := seen[text]; dup {
			return
		}

		seen[text] = struct{}{}
		tags = append(tags, text)
	})

	if len(tags) > 0 || title == "" {
		return tags
	}

	i := indexOf(entries, title)
	if i < 0 {
		return tags
	}

	window := entries[max(0, i-tagWindow):i]
	for j := len(window) - 1; j >= 0; j-- {
		s := window[j]

		if _, stop := e.stopMarkers[s]; stop || timestampPattern.MatchString(s) {
			continue
		}

		if n := utf8.RuneCountInString(s); n < minTagLen || n > maxTagLen {
			continue
		}

		if strings.ToUpper(s) != s || isNumeric(s) {
			continue
		}

		return append(tags, s)
	}

	return tags
}

func indexOf(entries []string, target string) int {
	for i, s := range entries {
		if s == target {
			return i
		}
	}

	return -1
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
