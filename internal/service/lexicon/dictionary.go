package lexicon

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/moe-backend/internal/domain"
	"github.com/heartmarshall/moe-backend/internal/provider"
)

// lookupDictionary is the first tier. Every provider failure is logged and
// reported as "no record".
func (r *Resolver) lookupDictionary(ctx context.Context, word string) (domain.WordDetails, bool) {
	result, err := r.dict.FetchEntry(ctx, word)
	if err != nil {
		r.log.WarnContext(ctx, "dictionary lookup failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return domain.WordDetails{}, false
	}
	if result == nil {
		return domain.WordDetails{}, false
	}

	return mapDictionaryResult(word, result)
}

// mapDictionaryResult normalizes a dictionary entry into WordDetails using its
// first meaning's first definition. It reports false when there is no
// definition text to work with.
func mapDictionaryResult(word string, dict *provider.DictionaryResult) (domain.WordDetails, bool) {
	if len(dict.Meanings) == 0 || len(dict.Meanings[0].Definitions) == 0 {
		return domain.WordDetails{}, false
	}

	meaning := dict.Meanings[0]
	def := meaning.Definitions[0]
	if strings.TrimSpace(def.Definition) == "" {
		return domain.WordDetails{}, false
	}

	normalized := domain.NormalizeText(dict.Word)
	if normalized == "" {
		normalized = word
	}

	details := domain.WordDetails{
		Word:             normalized,
		Pronunciation:    pickPronunciation(normalized, dict),
		Definition:       def.Definition,
		SimpleDefinition: domain.SimpleDefinition(def.Definition),
		Example:          pickExample(meaning),
		MemoryTip:        domain.MemoryTip(normalized),
		RelatedWords:     pickRelatedWords(normalized, meaning, def),
		Difficulty:       domain.DifficultyFor(normalized),
		Source:           domain.SourceDictionary,
	}

	if ph, ok := lo.Find(dict.Phonetics, func(p provider.PhoneticResult) bool { return p.AudioURL != "" }); ok {
		audio := ph.AudioURL
		details.AudioURL = &audio
	}

	return details, true
}

// pickPronunciation prefers the top-level phonetic, then the first phonetic
// entry with text, then the word itself.
func pickPronunciation(word string, dict *provider.DictionaryResult) string {
	if dict.Phonetic != "" {
		return dict.Phonetic
	}
	if ph, ok := lo.Find(dict.Phonetics, func(p provider.PhoneticResult) bool { return p.Text != "" }); ok {
		return ph.Text
	}
	return word
}

// pickExample uses the first definition's example, else the first sibling
// definition in the same meaning that has one.
func pickExample(meaning provider.MeaningResult) string {
	d, ok := lo.Find(meaning.Definitions, func(d provider.DefinitionResult) bool { return d.Example != "" })
	if !ok {
		return ""
	}
	return d.Example
}

// pickRelatedWords merges meaning and definition synonyms, deduplicated and
// capped; an empty list falls back to the length-tier words.
func pickRelatedWords(word string, meaning provider.MeaningResult, def provider.DefinitionResult) []string {
	return clampRelatedWords(word, append(append([]string{}, meaning.Synonyms...), def.Synonyms...))
}

// clampRelatedWords trims, lowercases and dedupes words, drops the word itself,
// and caps the list at domain.MaxRelatedWords. An empty result yields the fallback list.
func clampRelatedWords(word string, words []string) []string {
	cleaned := lo.Uniq(lo.FilterMap(words, func(w string, _ int) (string, bool) {
		w = domain.NormalizeText(w)
		return w, w != "" && w != word
	}))
	if len(cleaned) == 0 {
		return domain.RelatedWordsFor(word)
	}
	if len(cleaned) > domain.MaxRelatedWords {
		cleaned = cleaned[:domain.MaxRelatedWords]
	}
	return cleaned
}
