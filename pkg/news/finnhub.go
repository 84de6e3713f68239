package news

import (
	"context"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"tomorrownews/internal/model"
)

// FinnHubClient serves general market news as mundane elements when a key is
// configured.
type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	return &FinnHubClient{client: finnhub.NewAPIClient(cfg).DefaultApi}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(ctx context.Context, limit int) ([]model.NewsElement, error) {
	res, _, err := c.client.MarketNews(ctx).Category("general").Execute()
	if err != nil {
		return nil, err
	}

	var elements []model.NewsElement
	for _, item := range res {
		if item.Headline == nil || *item.Headline == "" || IsTragic(*item.Headline) {
			continue
		}

		e := model.NewsElement{
			Type:   model.TypeMarket,
			Text:   *item.Headline,
			Source: c.Name(),
			Real:   true,
		}
		if item.Source != nil && *item.Source != "" {
			e.Source = *item.Source
		}
		if item.Url != nil {
			e.URL = *item.Url
		}
		if item.Summary != nil {
			e.FullText = truncate(*item.Summary, 1000)
		}

		elements = append(elements, e)
		if len(elements) >= limit {
			break
		}
	}

	return elements, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
