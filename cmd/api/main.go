package main

import (
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tomorrownews/internal/config"
	"tomorrownews/internal/dedupe"
	"tomorrownews/internal/handler"
	"tomorrownews/internal/store"
	"tomorrownews/pkg/headline"
	"tomorrownews/pkg/llm"
	"tomorrownews/pkg/news"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	logger := slog.Default()

	cfg := config.Load()

	st, err := store.New(cfg.Store, logger)
	if err != nil {
		log.Fatalf("error opening prediction store: %v", err)
	}
	defer st.Close()

	chain := buildChain(cfg, logger)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	synth := headline.NewSynthesizer(chain,
		headline.NewTemplateGenerator(rng),
		headline.NewStockPhotos(rng),
		logger)

	var sources []news.Source
	if cfg.NewsAPIKey != "" {
		sources = append(sources, news.NewNewsAPIClient(cfg.NewsAPIKey))
	}
	if cfg.FinnhubKey != "" {
		sources = append(sources, news.NewFinnHubClient(cfg.FinnhubKey))
	}

	homepage := news.NewHomepageScraper(rand.New(rand.NewSource(time.Now().UnixNano())))
	scraper := news.NewURLScraper()

	seen := buildSeenTracker(cfg, logger)

	// Space out populate items only when real providers are in play.
	var populateDelay time.Duration
	if !chain.Empty() {
		populateDelay = time.Second
	}
	populator := handler.NewPopulator(homepage, synth, st, seen, populateDelay, logger)

	h := handler.NewPredictionHandler(st, synth, sources, scraper, populator, logger)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}
	slog.Info("AllowOrigins URLs", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	r.GET("/", h.GetRoot)
	r.GET("/api/mundane", h.GetMundane)
	r.POST("/api/predict", h.PostPredict)
	r.POST("/api/predict/from-url", h.PostPredictFromURL)
	r.GET("/api/predictions", h.GetPredictions)
	r.POST("/api/populate/nytimes", h.PostPopulateNYTimes)
	r.POST("/api/populate/yesterday", h.PostPopulateYesterday)
	r.POST("/api/cleanup/local", h.PostCleanupLocal)
	r.GET("/api/health", h.GetHealth)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// buildChain assembles the provider fallback order from configuration. With
// AI_PROVIDER=auto every configured provider joins the chain; otherwise only
// the named one does.
func buildChain(cfg config.App, logger *slog.Logger) *llm.Chain {
	var providers []llm.Generator

	wants := func(name string) bool {
		return cfg.AIProvider == "auto" || cfg.AIProvider == name
	}

	if wants("openai") && cfg.OpenAIKey != "" {
		providers = append(providers, llm.NewOpenAIClient(cfg.OpenAIKey))
	}
	if wants("anthropic") && cfg.AnthropicKey != "" {
		providers = append(providers, llm.NewAnthropicClient(cfg.AnthropicKey))
	}
	if wants("openrouter") && cfg.OpenRouterKey != "" {
		providers = append(providers, llm.NewOpenRouterClient(cfg.OpenRouterKey, cfg.OpenRouterModel, cfg.OpenRouterReferrer))
	}

	if len(providers) == 0 {
		logger.Warn("no AI provider configured, template generation only")
	}

	return llm.NewChain(logger, providers...)
}

func buildSeenTracker(cfg config.App, logger *slog.Logger) dedupe.Tracker {
	if cfg.RedisURL != "" {
		tracker, err := dedupe.NewRedis(cfg.RedisURL, cfg.SeenTTL, logger)
		if err == nil {
			logger.Info("using Redis seen-headline tracker")
			return tracker
		}
		logger.Warn("Redis unavailable, using in-memory seen-headline tracker", "error", err)
	}
	return dedupe.NewMemory(10000, cfg.SeenTTL)
}
