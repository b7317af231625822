package crawler

import (
	"net/url"
	"sort"
	"testing"
)

func TestCollectLinks(t *testing.T) {
	doc := docFromHTML(t, `<html><body>
		<a href="/eidisi/ergatiki-taxi/first-article">First</a>
		<a href="https://www.902.gr/eidisi/ergatiki-taxi/second-article">Second</a>
		<a href="/eidisi/ergatiki-taxi/first-article">First again</a>
		<a href="/eidisi/ergatiki-taxi/already-seen">Seen</a>
		<a href="/oikonomia/unrelated">Unrelated</a>
		<a href="#">Empty</a>
	</body></html>`)

	base, err := url.Parse("https://www.902.gr")
	if err != nil {
		t.Fatalf("parse base: %v", err)
	}

	seen := map[string]struct{}{
		"https://www.902.gr/eidisi/ergatiki-taxi/already-seen": {},
	}

	got := CollectLinks(doc, base, "/eidisi/ergatiki-taxi/", seen)
	sort.Strings(got)

	want := []string{
		"https://www.902.gr/eidisi/ergatiki-taxi/first-article",
		"https://www.902.gr/eidisi/ergatiki-taxi/second-article",
	}

	if len(got) != len(want) {
		t.Fatalf("CollectLinks = %v, want %v", got, want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CollectLinks[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCollectLinks_EmptyListing(t *testing.T) {
	doc := docFromHTML(t, `<html><body><a href="/oikonomia/x">Other section</a></body></html>`)

	base, err := url.Parse("https://www.902.gr")
	if err != nil {
		t.Fatalf("parse base: %v", err)
	}

	if got := CollectLinks(doc, base, "/eidisi/ergatiki-taxi/", map[string]struct{}{}); len(got) != 0 {
		t.Errorf("CollectLinks = %v, want empty", got)
	}
}
