package lexicon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/moe-backend/internal/domain"
)

// syllableRe matches a run of non-vowels followed by a run of vowels.
var syllableRe = regexp.MustCompile(`[^aeiouy]*[aeiouy]+`)

// GenerateFallback builds placeholder word details without any I/O.
// It is deterministic: the same word always yields the same record.
func GenerateFallback(word string) domain.WordDetails {
	title := domain.Capitalize(word)
	definition := fmt.Sprintf("%s is a word we are learning together. Let's find out what it means!", title)

	return domain.WordDetails{
		Word:             word,
		Pronunciation:    Syllabify(word),
		Definition:       definition,
		SimpleDefinition: domain.SimpleDefinition(fmt.Sprintf("%s is a new word to explore.", title)),
		Example:          fmt.Sprintf("I used the word %s when I talked about school today.", word),
		MemoryTip:        domain.MemoryTip(word),
		RelatedWords:     domain.RelatedWordsFor(word),
		Difficulty:       domain.DifficultyFor(word),
		Source:           domain.SourceFallback,
	}
}

// Syllabify splits a word into vowel-group syllables joined by hyphens,
// e.g. "elephant" becomes "e-le-phant". Trailing consonants stay on the last
// syllable. Words with fewer than two syllables are returned unchanged.
func Syllabify(word string) string {
	lower := strings.ToLower(word)
	parts := syllableRe.FindAllString(lower, -1)
	if len(parts) < 2 {
		return word
	}

	consumed := len(strings.Join(parts, ""))
	if consumed < len(lower) {
		parts[len(parts)-1] += lower[consumed:]
	}

	return strings.Join(parts, "-")
}
