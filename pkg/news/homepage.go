package news

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"github.com/gocolly/colly/v2"

	"tomorrownews/internal/model"
)

const (
	nytimesURL    = "https://www.nytimes.com/"
	nytimesSource = "The New York Times"

	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

var (
	articlePathPattern = regexp.MustCompile(`/\d{4}/\d{2}/\d{2}/`)
	whitespacePattern  = regexp.MustCompile(`\s+`)

	// Navigation chrome, games and newsletters that look like headlines
	// but are not articles.
	skipPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(see all|subscribe|log in|sign up|skip|menu|search|games|cooking|wirecutter|the athletic)`),
		regexp.MustCompile(`(?i)^(play |listen |watch |read |more |all |newsletter|podcast|quiz|crossword|wordle|spelling bee)`),
		regexp.MustCompile(`(?i)^(mini to maestro|5 minutes to|are you smarter|weekend reads|in case you missed)`),
		regexp.MustCompile(`(?i)<img`),
		regexp.MustCompile(`^[^a-zA-Z]*$`),
	}
)

// HomepageScraper pulls article headlines off the NYTimes front page. Site
// structure changes are tolerated, not solved: a layout shift just yields
// fewer elements.
type HomepageScraper struct {
	url string
	mu  sync.Mutex
	rng *rand.Rand
}

func NewHomepageScraper(rng *rand.Rand) *HomepageScraper {
	return &HomepageScraper{url: nytimesURL, rng: rng}
}

func (s *HomepageScraper) Name() string {
	return nytimesSource
}

func (s *HomepageScraper) Fetch(ctx context.Context, limit int) ([]model.NewsElement, error) {
	var elements []model.NewsElement
	seen := make(map[string]bool)

	c := colly.NewCollector(
		colly.UserAgent(browserUserAgent),
		colly.MaxDepth(1),
		colly.StdlibContext(ctx),
	)

	collect := func(headline, url string) {
		headline = strings.TrimSpace(whitespacePattern.ReplaceAllString(headline, " "))
		if len(headline) <= 15 || seen[strings.ToLower(headline)] {
			return
		}
		for _, p := range skipPatterns {
			if p.MatchString(headline) {
				return
			}
		}
		if IsTragic(headline) {
			return
		}

		seen[strings.ToLower(headline)] = true
		elements = append(elements, model.NewsElement{
			Type:   ClassifyType(headline),
			Text:   headline,
			Source: nytimesSource,
			Real:   true,
			URL:    url,
		})
	}

	// Article links carry dated paths; the headline is the link text or a
	// nearby heading.
	c.OnHTML(`a[href*="/202"]`, func(e *colly.HTMLElement) {
		url := e.Request.AbsoluteURL(e.Attr("href"))
		if !articlePathPattern.MatchString(url) {
			return
		}

		headline := strings.TrimSpace(e.Text)
		if len(headline) < 10 {
			headline = strings.TrimSpace(e.ChildText("h2, h3, h4"))
		}
		if len(headline) < 10 {
			headline = strings.TrimSpace(e.Attr("aria-label"))
		}
		if headline == "" {
			headline = strings.TrimSpace(e.Attr("title"))
		}

		collect(headline, url)
	})

	// Second pass over the testid markup for headlines the link walk missed.
	c.OnHTML(`[data-testid="headline"]`, func(e *colly.HTMLElement) {
		collect(strings.TrimSpace(e.Text), "")
	})

	if err := c.Visit(s.url); err != nil {
		return nil, fmt.Errorf("scraping homepage: %w", err)
	}
	c.Wait()

	s.mu.Lock()
	s.rng.Shuffle(len(elements), func(i, j int) {
		elements[i], elements[j] = elements[j], elements[i]
	})
	s.mu.Unlock()
	if len(elements) > limit {
		elements = elements[:limit]
	}

	return elements, nil
}
