package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tomorrownews/internal/model"
)

const newsAPIEndpoint = "https://newsapi.org/v2/top-headlines"

// NewsAPIClient pulls US business headlines from newsapi.org.
type NewsAPIClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		endpoint:   newsAPIEndpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Fetch(ctx context.Context, limit int) ([]model.NewsElement, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("newsapi: no API key configured")
	}

	q := url.Values{}
	q.Set("country", "us")
	q.Set("category", "business")
	q.Set("pageSize", "10")
	q.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("newsapi: invalid or missing API key")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi: unexpected status %d", resp.StatusCode)
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}

	var elements []model.NewsElement
	for _, a := range raw.Articles {
		if a.Title == "" || IsTragic(a.Title) {
			continue
		}
		elements = append(elements, model.NewsElement{
			Type:   model.TypeCorporate,
			Text:   a.Title,
			Source: a.Source.Name,
			Real:   true,
			URL:    a.URL,
		})
		if len(elements) >= limit {
			break
		}
	}

	return elements, nil
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
}
