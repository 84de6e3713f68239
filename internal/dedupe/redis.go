package dedupe

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tomorrownews:seen:"

// Redis shares the seen-headline set across processes (the API server and the
// populate CLI). Failures degrade to "not seen": a duplicate prediction is an
// accepted outcome, a blocked one is not.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewRedis(redisURL string, ttl time.Duration, log *slog.Logger) (*Redis, error) {
	if log == nil {
		log = slog.Default()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Redis{client: client, ttl: ttl, log: log}, nil
}

func (r *Redis) Seen(ctx context.Context, headline string) bool {
	n, err := r.client.Exists(ctx, keyPrefix+normalize(headline)).Result()
	if err != nil {
		r.log.Warn("dedupe lookup failed, treating as unseen", "error", err)
		return false
	}
	return n > 0
}

func (r *Redis) Mark(ctx context.Context, headline string) {
	if err := r.client.Set(ctx, keyPrefix+normalize(headline), 1, r.ttl).Err(); err != nil {
		r.log.Warn("dedupe mark failed", "error", err)
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}
