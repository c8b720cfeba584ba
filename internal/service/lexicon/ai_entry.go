package lexicon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

// completer turns a prompt into raw model text.
type completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AIEntryGenerator asks a hosted model for a word entry. It never fails:
// any problem yields the fallback record instead.
type AIEntryGenerator struct {
	llm completer
	log *slog.Logger
}

// NewAIEntryGenerator creates a generator. A nil llm (no API key configured)
// makes every call return the fallback record.
func NewAIEntryGenerator(llm completer, logger *slog.Logger) *AIEntryGenerator {
	return &AIEntryGenerator{
		llm: llm,
		log: logger.With("component", "ai_entry"),
	}
}

// aiEntry mirrors the JSON object requested from the model. RelatedWords stays
// raw because models sometimes return a string or null instead of an array.
type aiEntry struct {
	Word             string          `json:"word"`
	Pronunciation    string          `json:"pronunciation"`
	Definition       string          `json:"definition"`
	SimpleDefinition string          `json:"simpleDefinition"`
	Example          string          `json:"example"`
	MemoryTip        string          `json:"memoryTip"`
	RelatedWords     json.RawMessage `json:"relatedWords"`
	Difficulty       string          `json:"difficulty"`
}

var errNoCompleter = errors.New("no llm configured")

// Generate returns AI-written word details, or the fallback record when the
// model is unavailable or its output cannot be parsed.
func (g *AIEntryGenerator) Generate(ctx context.Context, word string) domain.WordDetails {
	raw, err := g.complete(ctx, word)
	if err != nil {
		g.log.WarnContext(ctx, "ai entry unavailable, using fallback",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return GenerateFallback(word)
	}

	var entry aiEntry
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &entry); err != nil {
		g.log.WarnContext(ctx, "ai entry is not valid json, using fallback",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return GenerateFallback(word)
	}

	return normalizeAIEntry(word, entry)
}

func (g *AIEntryGenerator) complete(ctx context.Context, word string) (string, error) {
	if g.llm == nil {
		return "", errNoCompleter
	}
	return g.llm.Complete(ctx, buildPrompt(word))
}

// normalizeAIEntry forces the invariants of domain.WordDetails onto model output.
// Fields the model left empty are filled from the fallback record.
func normalizeAIEntry(input string, entry aiEntry) domain.WordDetails {
	word := domain.NormalizeText(entry.Word)
	if word == "" {
		word = input
	}
	fb := GenerateFallback(word)

	var related []string
	if len(entry.RelatedWords) > 0 {
		// Non-array values leave related empty and fall through to the fallback list.
		_ = json.Unmarshal(entry.RelatedWords, &related)
	}

	difficulty := domain.Difficulty(strings.ToLower(strings.TrimSpace(entry.Difficulty)))
	if !difficulty.IsValid() {
		difficulty = domain.DifficultyFor(word)
	}

	definition := firstNonEmpty(entry.Definition, fb.Definition)
	simple := firstNonEmpty(entry.SimpleDefinition, definition)

	return domain.WordDetails{
		Word:             word,
		Pronunciation:    firstNonEmpty(entry.Pronunciation, fb.Pronunciation),
		Definition:       definition,
		SimpleDefinition: domain.SimpleDefinition(simple),
		Example:          firstNonEmpty(entry.Example, fb.Example),
		MemoryTip:        firstNonEmpty(entry.MemoryTip, fb.MemoryTip),
		RelatedWords:     clampRelatedWords(word, related),
		Difficulty:       difficulty,
		Source:           domain.SourceAI,
	}
}

// stripCodeFence removes optional markdown code fences (```json ... ```) that
// models wrap around JSON output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	for _, prefix := range []string{"```json", "```JSON", "```"} {
		if after, ok := strings.CutPrefix(s, prefix); ok {
			s = after
			break
		}
	}
	if before, ok := strings.CutSuffix(strings.TrimSpace(s), "```"); ok {
		s = before
	}
	return strings.TrimSpace(s)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// buildPrompt creates the model prompt for a single word.
func buildPrompt(word string) string {
	return fmt.Sprintf(`You are Moe, a friendly tutor who explains English words to children aged 6 to 12.

Create a dictionary entry for the word "%s".

Output ONLY a valid JSON object matching this exact schema:
{
  "word": "<the word in lowercase>",
  "pronunciation": "<syllables separated by hyphens, e.g. el-e-phant>",
  "definition": "<clear, accurate definition>",
  "simpleDefinition": "<child-friendly definition, at most 140 characters>",
  "example": "<one short example sentence a child would say>",
  "memoryTip": "<a fun way to remember the word>",
  "relatedWords": ["<up to 6 related words>"],
  "difficulty": "<easy|medium|advanced>"
}

Rules:
- difficulty must be exactly one of: easy, medium, advanced
- Keep the language simple, warm and encouraging
- Output ONLY the JSON, no markdown, no explanations`, word)
}
