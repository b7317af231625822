package crawler

import (
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/PuerkitoBio/goquery"

	"ergatika/internal/config"
	"ergatika/internal/logger"
	"ergatika/internal/models"
	"ergatika/pkg/utils"
)

// FetchFunc retrieves a URL as a parsed document. Injected so the
// pagination state machine is testable without a live site.
type FetchFunc func(url string) (*goquery.Document, error)

// Options bound a crawl run. Exactly one of Cutoff or MaxPages may be
// unset; the CLI rejects runs with neither.
type Options struct {
	// Cutoff is the earliest acceptable published_at. Articles older
	// than this are excluded from output but still marked seen.
	Cutoff *time.Time
	// MaxPages stops the crawl after this many listing pages (0 = unbounded).
	MaxPages int
}

// Controller drives pagination, termination, rate limiting, and result
// aggregation. It owns the seen-set and record list for the run's
// lifetime; execution is fully sequential.
type Controller struct {
	cfg       *config.Config
	fetch     FetchFunc
	extractor *Extractor
	log       *logger.Logger

	articleDelay time.Duration
	pageDelay    time.Duration
}

// NewController creates a controller that fetches through fetch.
func NewController(cfg *config.Config, fetch FetchFunc, log *logger.Logger) *Controller {
	return &Controller{
		cfg:          cfg,
		fetch:        fetch,
		extractor:    NewExtractor(cfg.Crawler.Site),
		log:          log,
		articleDelay: cfg.ArticleDelay(),
		pageDelay:    cfg.PageDelay(),
	}
}

// Run walks listing pages in increasing index order until a terminal
// condition: page limit reached, pagination exhausted, or the oldest
// article on a page predates the cutoff (listing pages are ordered
// newest-first, so later pages are entirely out of range). Any fetch
// failure is fatal and unwinds the run with no partial save.
func (c *Controller) Run(opts Options) ([]models.Article, error) {
	base, err := url.Parse(c.cfg.Crawler.Site.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	seen := make(map[string]struct{})
	articles := []models.Article{}

	for page := 0; ; page++ {
		if opts.MaxPages > 0 && page >= opts.MaxPages {
			break
		}

		listURL := c.cfg.ListingURL(page)
		c.log.Progressf("Fetching page %d: %s", page, listURL)

		doc, err := c.fetch(listURL)
		if err != nil {
			return nil, fmt.Errorf("fetch listing page %d: %w", page, err)
		}

		links := CollectLinks(doc, base, c.cfg.Crawler.Site.ArticlePath, seen)
		if len(links) == 0 {
			break
		}

		sort.Strings(links)

		oldest, err := c.processPage(links, seen, opts.Cutoff, &articles)
		if err != nil {
			return nil, err
		}

		if opts.Cutoff != nil && !oldest.IsZero() && oldest.Before(*opts.Cutoff) {
			break
		}

		time.Sleep(c.pageDelay)
	}

	return articles, nil
}

// processPage visits one page's links in sorted order, marking each
// seen, and returns the minimum published_at among successfully
// extracted articles (zero when none extracted).
func (c *Controller) processPage(links []string, seen map[string]struct{}, cutoff *time.Time, articles *[]models.Article) (time.Time, error) {
	var oldest time.Time

	for _, u := range links {
		seen[u] = struct{}{}

		doc, err := c.fetch(u)
		if err != nil {
			return oldest, fmt.Errorf("fetch article %s: %w", u, err)
		}

		if record := c.extractor.Extract(doc, u); record != nil {
			publishedAt := record.PublishedAt.Time
			if oldest.IsZero() || publishedAt.Before(oldest) {
				oldest = publishedAt
			}

			if cutoff == nil || !publishedAt.Before(*cutoff) {
				*articles = append(*articles, *record)
				c.log.Progressf("  [%d] %s... (%s)",
					len(*articles),
					utils.TruncateRunes(record.Title, 60),
					record.PublishedAt.Format(models.MinuteLayout),
				)
			}
		}

		time.Sleep(c.articleDelay)
	}

	return oldest, nil
}
