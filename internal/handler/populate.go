package handler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tomorrownews/internal/dedupe"
	"tomorrownews/internal/model"
	"tomorrownews/pkg/news"
)

const yesterdayBatchSize = 50

// PopulateSummary is the per-item tally of a bulk run. Individual failures
// never abort the batch.
type PopulateSummary struct {
	Generated int
	Skipped   int
	Errors    int
	Total     int
}

// Populator bulk-runs scrape -> synthesize -> store. Headlines that already
// produced a prediction are skipped via the seen tracker; this is the only
// place the soft idempotency applies.
type Populator struct {
	homepage news.Source
	synth    Synthesizer
	store    PredictionStore
	seen     dedupe.Tracker
	// delay between items, to stay under AI provider rate limits. Zero when
	// no provider chain is configured.
	delay time.Duration
	log   *slog.Logger
}

func NewPopulator(homepage news.Source, synth Synthesizer, st PredictionStore,
	seen dedupe.Tracker, delay time.Duration, log *slog.Logger) *Populator {
	if log == nil {
		log = slog.Default()
	}
	return &Populator{
		homepage: homepage,
		synth:    synth,
		store:    st,
		seen:     seen,
		delay:    delay,
		log:      log,
	}
}

// Run scrapes up to count articles and generates a prediction for each one.
func (p *Populator) Run(ctx context.Context, count int) (PopulateSummary, error) {
	articles, err := p.homepage.Fetch(ctx, count)
	if err != nil {
		return PopulateSummary{}, fmt.Errorf("fetching articles: %w", err)
	}
	if len(articles) == 0 {
		return PopulateSummary{}, fmt.Errorf("no articles found; the site may have changed structure or is blocking requests")
	}

	summary := PopulateSummary{Total: len(articles)}

	for i, article := range articles {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if p.seen != nil && p.seen.Seen(ctx, article.Text) {
			p.log.Info("headline already used, skipping", "headline", article.Text)
			summary.Skipped++
			continue
		}

		elements := []model.NewsElement{article}
		result := p.synth.Synthesize(ctx, elements)

		prediction := &model.Prediction{
			Components:            elements,
			Headline:              result.Headline,
			StockPhotoDescription: result.StockPhotoDescription,
			StockImageURL:         result.StockImageURL,
			SourceURL:             article.URL,
		}

		stored, err := p.store.Insert(ctx, prediction)
		if err != nil {
			p.log.Error("error saving prediction", "headline", article.Text, "error", err)
			summary.Errors++
			continue
		}

		if p.seen != nil {
			p.seen.Mark(ctx, article.Text)
		}
		summary.Generated++
		p.log.Info("prediction generated",
			"progress", fmt.Sprintf("%d/%d", i+1, len(articles)),
			"headline", stored.Headline)

		if p.delay > 0 && i < len(articles)-1 {
			select {
			case <-time.After(p.delay):
			case <-ctx.Done():
				return summary, ctx.Err()
			}
		}
	}

	p.log.Info("populate complete",
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"errors", summary.Errors,
		"total", summary.Total)

	return summary, nil
}
