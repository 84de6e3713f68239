package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"tomorrownews/internal/model"
)

const openRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterClient speaks OpenRouter's OpenAI-compatible chat-completions API.
type OpenRouterClient struct {
	client *openai.Client
	model  string
	name   string
}

func NewOpenRouterClient(apiKey, model, referrer string) *OpenRouterClient {
	if model == "" {
		model = "openai/gpt-4o-mini"
	}
	if referrer == "" {
		referrer = "http://localhost:3001"
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(openRouterBaseURL),
		option.WithHeader("HTTP-Referer", referrer),
		option.WithHeader("X-Title", "Tomorrow's Tragedy"),
	)

	return &OpenRouterClient{
		client: &client,
		model:  model,
		name:   "openrouter",
	}
}

func (c *OpenRouterClient) Name() string {
	return c.name
}

func (c *OpenRouterClient) Generate(ctx context.Context, elements []model.NewsElement) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Temperature: openai.Float(0.8),
		MaxTokens:   openai.Int(150),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(buildPrompt(elements)),
		},
	})

	if err != nil {
		return "", fmt.Errorf("openrouter API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openrouter")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
