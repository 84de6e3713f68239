package llm

import (
	"context"
	"log/slog"

	"tomorrownews/internal/model"
)

// Chain tries providers in the configured order and returns the first
// non-empty headline. Provider failures are logged and swallowed; an
// exhausted chain reports no result rather than an error so the caller can
// fall back to template generation.
type Chain struct {
	providers []Generator
	log       *slog.Logger
}

func NewChain(log *slog.Logger, providers ...Generator) *Chain {
	if log == nil {
		log = slog.Default()
	}
	return &Chain{providers: providers, log: log}
}

// Empty reports whether no provider is configured.
func (c *Chain) Empty() bool {
	return len(c.providers) == 0
}

func (c *Chain) Generate(ctx context.Context, elements []model.NewsElement) (string, error) {
	if len(elements) == 0 {
		return "", nil
	}

	for _, p := range c.providers {
		h, err := p.Generate(ctx, elements)
		if err != nil {
			c.log.Warn("provider produced no result", "provider", p.Name(), "error", err)
			continue
		}
		if h != "" {
			return h, nil
		}
	}

	return "", nil
}
