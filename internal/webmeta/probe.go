package webmeta

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// CompanyNameHint fetches https://{domain} and pulls a display name out of
// og:site_name or the page title. Best-effort only: it backs the
// autocomplete flow when the suggester has nothing for a domain-looking
// query, so every failure collapses to "".
func CompanyNameHint(ctx context.Context, domain string) string {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.Trim(domain, "/")
	if domain == "" || !strings.Contains(domain, ".") {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://"+domain, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Prospector/1.0 (+local)")

	hc := &http.Client{Timeout: 10 * time.Second}
	res, err := hc.Do(req)
	if err != nil {
		return ""
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return ""
	}

	if v, ok := doc.Find(`meta[property="og:site_name"]`).First().Attr("content"); ok {
		if v = cleanText(v); v != "" {
			return v
		}
	}

	title := cleanText(doc.Find("title").First().Text())
	// titles tend to be "Acme — Widgets for everyone"; keep the lead segment
	for _, sep := range []string{" | ", " - ", " – ", " — ", ": "} {
		if i := strings.Index(title, sep); i > 0 {
			title = title[:i]
			break
		}
	}
	return cleanText(title)
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
