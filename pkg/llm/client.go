package llm

import (
	"context"
	"time"

	"tomorrownews/internal/model"
)

// attemptTimeout bounds each provider call; an expired attempt is treated as
// "this provider produced no result" and the chain moves on.
const attemptTimeout = 30 * time.Second

// Generator is one language-model provider. Implementations return the raw
// headline text; transport errors, timeouts and malformed responses come back
// as errors for the chain to swallow.
type Generator interface {
	Generate(ctx context.Context, elements []model.NewsElement) (string, error)
	Name() string
}
