package news

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"tomorrownews/internal/model"
)

// ScrapeError is a scrape-target rejection surfaced to the caller with a
// human-readable explanation. Everything else in the pipeline is absorbed;
// this is a boundary failure.
type ScrapeError struct {
	Reason string
}

func (e *ScrapeError) Error() string {
	return e.Reason
}

// Article is the scraped page content before conversion to a NewsElement.
type Article struct {
	Title         string
	Text          string
	Description   string
	Author        string
	PublishedTime string
	Source        string
	URL           string
}

// Candidate article containers, most specific first.
var articleSelectors = []string{
	`section[data-testid="article-body"]`,
	"article",
	`[role="article"]`,
	".article-content",
	".article-body",
	".post-content",
	".entry-content",
	".content",
	"main",
	".main-content",
}

// URLScraper fetches and parses an arbitrary article URL.
type URLScraper struct {
	httpClient *http.Client
}

func NewURLScraper() *URLScraper {
	return &URLScraper{
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Scrape fetches the page and extracts title, body text and metadata.
// Connection failures and 403/404 responses come back as ScrapeError.
func (s *URLScraper) Scrape(ctx context.Context, target string) (*Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &ScrapeError{Reason: "Could not connect to URL. Please check the link is valid."}
	}

	req.Header.Set("User-Agent", browserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Referer", "https://www.google.com/")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) || errors.Is(err, context.DeadlineExceeded) {
			return nil, &ScrapeError{Reason: "Could not connect to URL. Please check the link is valid."}
		}
		return nil, &ScrapeError{Reason: fmt.Sprintf("Failed to scrape article: %v", err)}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusForbidden:
		return nil, &ScrapeError{Reason: "This website blocks automated access. Some sites (like NYTimes) require JavaScript or have bot protection. Try a different news source or copy the headline text directly."}
	case http.StatusNotFound:
		return nil, &ScrapeError{Reason: "Page not found. Please check the URL."}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ScrapeError{Reason: fmt.Sprintf("Failed to scrape article: unexpected status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &ScrapeError{Reason: fmt.Sprintf("Failed to scrape article: %v", err)}
	}

	article := &Article{
		Title:         model.Sanitize(extractTitle(doc)),
		Text:          extractBody(doc),
		Description:   model.Sanitize(extractMeta(doc, `meta[property="og:description"]`, `meta[name="description"]`, `meta[name="twitter:description"]`)),
		Author:        model.Sanitize(extractAuthor(doc)),
		PublishedTime: extractPublishedTime(doc),
		Source:        extractSource(doc, target),
		URL:           target,
	}

	return article, nil
}

// ToElement converts a scraped article into pipeline input, classifying its
// type and capping the body kept for AI context.
func (s *URLScraper) ToElement(a *Article) model.NewsElement {
	return model.NewsElement{
		Type:     ClassifyType(a.Title),
		Text:     a.Title,
		Source:   a.Source,
		Real:     true,
		URL:      a.URL,
		FullText: truncate(a.Text, 1000),
	}
}

func extractTitle(doc *goquery.Document) string {
	if t, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && t != "" {
		return t
	}
	if t, ok := doc.Find(`meta[name="twitter:title"]`).Attr("content"); ok && t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find(`h1[data-testid="headline"]`).First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").Text()); t != "" {
		return t
	}
	return "Untitled Article"
}

func extractBody(doc *goquery.Document) string {
	var body string

	for _, selector := range articleSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		container.Find("script, style, nav, footer, aside, .ad, .advertisement, .byline, .comments").Remove()
		body = strings.TrimSpace(container.Text())
		if len(body) > 200 {
			break
		}
	}

	// Paragraph fallback when no container held real content.
	if len(body) < 200 {
		var parts []string
		paragraphs := doc.Find(`p[data-testid="paragraph"]`)
		if paragraphs.Length() == 0 {
			paragraphs = doc.Find("p")
		}
		paragraphs.Each(func(_ int, sel *goquery.Selection) {
			parts = append(parts, sel.Text())
		})
		body = strings.TrimSpace(strings.Join(parts, " "))
	}

	body = model.Sanitize(body)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(body, " "))
}

func extractMeta(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if v, ok := doc.Find(sel).Attr("content"); ok && v != "" {
			return v
		}
	}
	return ""
}

func extractAuthor(doc *goquery.Document) string {
	if a := extractMeta(doc, `meta[property="article:author"]`); a != "" {
		return a
	}
	if a := strings.TrimSpace(doc.Find(`[rel="author"]`).Text()); a != "" {
		return a
	}
	return strings.TrimSpace(doc.Find(".author").First().Text())
}

func extractPublishedTime(doc *goquery.Document) string {
	if t := extractMeta(doc, `meta[property="article:published_time"]`); t != "" {
		return t
	}
	if t, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
		return t
	}
	return ""
}

func extractSource(doc *goquery.Document, target string) string {
	source := extractMeta(doc,
		`meta[property="og:site_name"]`,
		`meta[name="application-name"]`,
		`meta[name="twitter:site"]`,
	)
	if source != "" {
		return strings.TrimSpace(strings.TrimPrefix(source, "@"))
	}

	// Fall back to the capitalized hostname.
	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		return "Unknown"
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	name := strings.Split(host, ".")[0]
	if name == "" {
		return "Unknown"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
