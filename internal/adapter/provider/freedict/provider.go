package freedict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/moe-backend/internal/provider"
)

const (
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	DefaultTimeout = 8 * time.Second

	maxBodyBytes = 1 << 20
)

// Provider fetches dictionary data from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewProvider creates a Provider with the default FreeDictionary API URL.
func NewProvider(logger *slog.Logger) *Provider {
	return NewProviderWithURL(DefaultBaseURL, DefaultTimeout, logger)
}

// NewProviderWithURL creates a Provider with a custom base URL and timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewProviderWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) *Provider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Provider{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "freedict"),
	}
}

// FetchEntry fetches the first dictionary entry for the given word.
// Returns nil, nil if the word is not found: HTTP 404, an empty array, or a
// body that is not a JSON array. The request is made exactly once.
func (p *Provider) FetchEntry(ctx context.Context, word string) (*provider.DictionaryResult, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("freedict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("freedict: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		return nil, nil
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w", err)
	}
	if len(entries) == 0 {
		return nil, nil
	}

	result := mapAPIEntry(entries[0])

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("status", resp.StatusCode),
		slog.Int("entries", len(entries)),
		slog.Int("meanings", len(result.Meanings)),
	)

	return result, nil
}

// mapAPIEntry converts one API entry into a provider.DictionaryResult.
// Phonetics with neither text nor audio are dropped.
func mapAPIEntry(entry apiEntry) *provider.DictionaryResult {
	result := &provider.DictionaryResult{
		Word:      entry.Word,
		Phonetic:  strings.TrimSpace(entry.Phonetic),
		Phonetics: []provider.PhoneticResult{},
		Meanings:  []provider.MeaningResult{},
	}

	for _, ph := range entry.Phonetics {
		text := strings.TrimSpace(ph.Text)
		audio := strings.TrimSpace(ph.Audio)
		if text == "" && audio == "" {
			continue
		}
		result.Phonetics = append(result.Phonetics, provider.PhoneticResult{Text: text, AudioURL: audio})
	}

	for _, m := range entry.Meanings {
		meaning := provider.MeaningResult{
			PartOfSpeech: m.PartOfSpeech,
			Synonyms:     m.Synonyms,
			Definitions:  make([]provider.DefinitionResult, 0, len(m.Definitions)),
		}
		for _, d := range m.Definitions {
			meaning.Definitions = append(meaning.Definitions, provider.DefinitionResult{
				Definition: strings.TrimSpace(d.Definition),
				Example:    strings.TrimSpace(d.Example),
				Synonyms:   d.Synonyms,
			})
		}
		result.Meanings = append(result.Meanings, meaning)
	}

	return result
}
