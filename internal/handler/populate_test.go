package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"

	"tomorrownews/internal/dedupe"
	"tomorrownews/internal/model"
)

var scrapedArticles = []model.NewsElement{
	{Type: model.TypeCorporate, Text: "Acme Corp launches nationwide loyalty program", Source: "The New York Times", Real: true, URL: "https://example.com/a"},
	{Type: model.TypeTech, Text: "Chipmaker breaks ground on new fabrication plant", Source: "The New York Times", Real: true, URL: "https://example.com/b"},
}

func TestPopulator_Run(t *testing.T) {
	st := &fakeStore{}
	homepage := &fakeSource{name: "Homepage", elements: scrapedArticles}
	seen := dedupe.NewMemory(100, time.Hour)

	p := NewPopulator(homepage, &fakeSynth{result: testResult}, st, seen, 0, nil)

	summary, err := p.Run(context.Background(), 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, summary.Generated)
	assert.Equal(t, 0, summary.Skipped)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, 2, summary.Total)

	assert.Equal(t, 2, len(st.inserted))
	assert.Equal(t, testResult.Headline, st.inserted[0].Headline)
	assert.Equal(t, "https://example.com/a", st.inserted[0].SourceURL)

	// Both headlines are now marked.
	assert.Equal(t, true, seen.Seen(context.Background(), scrapedArticles[0].Text))
}

func TestPopulator_SkipsSeenHeadlines(t *testing.T) {
	st := &fakeStore{}
	homepage := &fakeSource{name: "Homepage", elements: scrapedArticles}
	seen := dedupe.NewMemory(100, time.Hour)
	seen.Mark(context.Background(), scrapedArticles[0].Text)

	p := NewPopulator(homepage, &fakeSynth{result: testResult}, st, seen, 0, nil)

	summary, err := p.Run(context.Background(), 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, summary.Generated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, len(st.inserted))
	assert.Equal(t, scrapedArticles[1].Text, st.inserted[0].Components[0].Text)
}

func TestPopulator_CountsInsertFailures(t *testing.T) {
	st := &fakeStore{insertErr: errors.New("connection reset")}
	homepage := &fakeSource{name: "Homepage", elements: scrapedArticles}

	p := NewPopulator(homepage, &fakeSynth{result: testResult}, st, nil, 0, nil)

	summary, err := p.Run(context.Background(), 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, summary.Generated)
	assert.Equal(t, 2, summary.Errors)
}

func TestPopulator_NoArticles(t *testing.T) {
	homepage := &fakeSource{name: "Homepage"}
	p := NewPopulator(homepage, &fakeSynth{result: testResult}, &fakeStore{}, nil, 0, nil)

	_, err := p.Run(context.Background(), 10)
	assert.NotEqual(t, nil, err)
}

func TestPopulator_FetchError(t *testing.T) {
	homepage := &fakeSource{name: "Homepage", err: errors.New("blocked")}
	p := NewPopulator(homepage, &fakeSynth{result: testResult}, &fakeStore{}, nil, 0, nil)

	_, err := p.Run(context.Background(), 10)
	assert.NotEqual(t, nil, err)
}

func TestPostPopulateNYTimes(t *testing.T) {
	st := &fakeStore{}
	homepage := &fakeSource{name: "Homepage", elements: scrapedArticles}
	r := newTestRouter(st, nil, homepage, &fakeScraper{})

	w := postJSON(r, "/api/populate/nytimes", `{"count":5}`)
	assert.Equal(t, http.StatusOK, w.Code)
	if !strings.Contains(w.Body.String(), `"generated":2`) {
		t.Fatalf("unexpected populate response: %s", w.Body.String())
	}
}

func TestPostPopulateNYTimes_FetchFailure(t *testing.T) {
	homepage := &fakeSource{name: "Homepage", err: errors.New("blocked")}
	r := newTestRouter(&fakeStore{}, nil, homepage, &fakeScraper{})

	w := postJSON(r, "/api/populate/nytimes", `{}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
