package config

import (
	"os"
	"strconv"
	"time"

	"tomorrownews/internal/store"
)

// App is everything the service reads from the environment, resolved once at
// startup and passed down explicitly.
type App struct {
	Port        string
	FrontendURL string

	Store store.Config

	RedisURL string
	SeenTTL  time.Duration

	AIProvider         string // openai | anthropic | openrouter | auto
	OpenAIKey          string
	AnthropicKey       string
	OpenRouterKey      string
	OpenRouterModel    string
	OpenRouterReferrer string

	NewsAPIKey string
	FinnhubKey string
}

// Load reads the environment. Missing values fall back to local-development
// defaults; nothing here fails hard because the pipeline degrades gracefully
// without AI providers or live feeds.
func Load() App {
	return App{
		Port:        getEnv("PORT", "3001"),
		FrontendURL: os.Getenv("FRONTEND_URL"),

		Store: store.Config{
			Host:       os.Getenv("DB_HOST"),
			Port:       getInt("DB_PORT", 5432),
			Name:       getEnv("DB_NAME", "predictions"),
			User:       os.Getenv("DB_USER"),
			Password:   os.Getenv("DB_PASSWORD"),
			SSL:        os.Getenv("DB_SSL") == "true",
			SQLitePath: getEnv("SQLITE_PATH", "predictions.db"),
		},

		RedisURL: os.Getenv("REDIS_URL"),
		SeenTTL:  getDuration("SEEN_HEADLINE_TTL", "168h"),

		AIProvider:         getEnv("AI_PROVIDER", "auto"),
		OpenAIKey:          os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:       os.Getenv("ANTHROPIC_API_KEY"),
		OpenRouterKey:      os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel:    os.Getenv("OPENROUTER_MODEL"),
		OpenRouterReferrer: os.Getenv("OPENROUTER_REFERRER"),

		NewsAPIKey: os.Getenv("NEWS_API_KEY"),
		FinnhubKey: os.Getenv("FINNHUB_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getDuration(key, fallback string) time.Duration {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		d, _ = time.ParseDuration(fallback)
	}
	return d
}
