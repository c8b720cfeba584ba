package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/moe-backend/internal/adapter/provider/anthropic"
	"github.com/heartmarshall/moe-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/moe-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/moe-backend/internal/adapter/provider/groq"
	"github.com/heartmarshall/moe-backend/internal/config"
	"github.com/heartmarshall/moe-backend/internal/service/lexicon"
)

type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewResolver builds the dictionary → AI → fallback chain from config.
// It needs no database, so the lookup CLI shares it with the server.
func NewResolver(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*lexicon.Resolver, error) {
	llm, err := newCompleter(ctx, cfg.LLM, logger)
	if err != nil {
		return nil, err
	}

	dict := freedict.NewProviderWithURL(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout, logger)

	return lexicon.NewResolver(
		logger,
		dict,
		lexicon.NewAIEntryGenerator(llm, logger),
		lexicon.Timeouts{Dictionary: cfg.Dictionary.Timeout, AI: cfg.LLM.Timeout},
	), nil
}

// newCompleter returns the configured model client, or nil when no API key
// is set. A nil completer makes the AI tier answer with fallback records.
func newCompleter(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (completer, error) {
	if cfg.APIKey == "" {
		logger.Warn("llm api key not set, ai tier will use fallback records")
		return nil, nil
	}

	switch strings.ToLower(cfg.Provider) {
	case config.ProviderGroq:
		return groq.New(groq.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			BaseURL:   cfg.BaseURL,
			MaxTokens: int64(cfg.MaxTokens),
			Timeout:   cfg.Timeout,
		}, logger), nil
	case config.ProviderAnthropic:
		return anthropic.New(anthropic.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			BaseURL:   cfg.BaseURL,
			MaxTokens: int64(cfg.MaxTokens),
			Timeout:   cfg.Timeout,
		}, logger), nil
	case config.ProviderGemini:
		c, err := gemini.New(ctx, gemini.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
}
