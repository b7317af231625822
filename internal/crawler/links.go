package crawler

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CollectLinks extracts candidate article links from a listing page.
// Anchors whose href contains articlePath are kept, relative targets
// are resolved against base, duplicates within the page are dropped,
// and URLs already in seen are subtracted. An empty result means the
// pagination is exhausted.
func CollectLinks(doc *goquery.Document, base *url.URL, articlePath string, seen map[string]struct{}) []string {
	found := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, articlePath) {
			return
		}

		if strings.HasPrefix(href, "http") {
			found[href] = struct{}{}

			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}

		found[base.ResolveReference(ref).String()] = struct{}{}
	})

	var links []string

	for u := range found {
		if _, visited := seen[u]; !visited {
			links = append(links, u)
		}
	}

	return links
}
