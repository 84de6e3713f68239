package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tomorrownews/internal/config"
	"tomorrownews/internal/dedupe"
	"tomorrownews/internal/handler"
	"tomorrownews/internal/store"
	"tomorrownews/pkg/headline"
	"tomorrownews/pkg/llm"
	"tomorrownews/pkg/news"
)

// Bulk-populates the prediction store from the scraped homepage, one
// prediction per article, without needing the API server to be running.
func main() {
	count := flag.Int("count", 15, "number of articles to scrape and predict from")
	flag.Parse()

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	logger := slog.Default()

	cfg := config.Load()

	st, err := store.New(cfg.Store, logger)
	if err != nil {
		log.Fatalf("error opening prediction store: %v", err)
	}
	defer st.Close()

	var providers []llm.Generator
	if cfg.OpenAIKey != "" {
		providers = append(providers, llm.NewOpenAIClient(cfg.OpenAIKey))
	}
	if cfg.AnthropicKey != "" {
		providers = append(providers, llm.NewAnthropicClient(cfg.AnthropicKey))
	}
	if cfg.OpenRouterKey != "" {
		providers = append(providers, llm.NewOpenRouterClient(cfg.OpenRouterKey, cfg.OpenRouterModel, cfg.OpenRouterReferrer))
	}
	chain := llm.NewChain(logger, providers...)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	synth := headline.NewSynthesizer(chain,
		headline.NewTemplateGenerator(rng),
		headline.NewStockPhotos(rng),
		logger)

	var seen dedupe.Tracker = dedupe.NewMemory(10000, cfg.SeenTTL)
	if cfg.RedisURL != "" {
		if tracker, err := dedupe.NewRedis(cfg.RedisURL, cfg.SeenTTL, logger); err == nil {
			seen = tracker
		} else {
			logger.Warn("Redis unavailable, duplicates across runs are possible", "error", err)
		}
	}

	var delay time.Duration
	if !chain.Empty() {
		delay = time.Second
	}

	homepage := news.NewHomepageScraper(rand.New(rand.NewSource(time.Now().UnixNano())))
	populator := handler.NewPopulator(homepage, synth, st, seen, delay, logger)

	summary, err := populator.Run(context.Background(), *count)
	if err != nil {
		log.Fatalf("populate failed: %v", err)
	}

	logger.Info("done",
		"generated", summary.Generated,
		"skipped", summary.Skipped,
		"errors", summary.Errors,
		"total", summary.Total)
}
