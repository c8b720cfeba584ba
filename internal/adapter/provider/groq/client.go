// Package groq calls Groq's OpenAI-compatible chat completions endpoint
// through the OpenAI SDK.
package groq

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

const (
	DefaultBaseURL   = "https://api.groq.com/openai/v1"
	DefaultModel     = "llama-3.3-70b-versatile"
	DefaultMaxTokens = 1024
	DefaultTimeout   = 10 * time.Second

	temperature = 0.3
)

// Config holds the client settings.
type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int64
	Timeout   time.Duration
}

// Client sends one-shot chat completion requests.
type Client struct {
	client    openai.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Client, filling defaults for empty settings.
// SDK retries are disabled: the resolver falls through to the next tier instead.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	return &Client{
		client: openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(baseURL+"/"),
			option.WithMaxRetries(0),
			option.WithRequestTimeout(timeout),
		),
		model:     model,
		maxTokens: maxTokens,
		log:       logger.With("adapter", "groq"),
	}
}

// Complete sends prompt as a single user message and returns the first choice.
// The model is asked for a JSON object.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	c.log.DebugContext(ctx, "groq request", slog.String("model", c.model))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(c.maxTokens),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errors.New("groq: empty response")
	}

	return resp.Choices[0].Message.Content, nil
}
