package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Difficulty is the learning difficulty tier of a word.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyAdvanced Difficulty = "advanced"
)

func (d Difficulty) String() string { return string(d) }

// IsValid reports whether d is one of the known tiers.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyAdvanced:
		return true
	}
	return false
}

// WordSource names the tier that produced a WordDetails record.
type WordSource string

const (
	SourceDictionary WordSource = "dictionary"
	SourceAI         WordSource = "ai"
	SourceFallback   WordSource = "fallback"
)

const (
	// MaxSimpleDefinition is the rune limit for WordDetails.SimpleDefinition.
	MaxSimpleDefinition = 140
	// MaxRelatedWords caps WordDetails.RelatedWords.
	MaxRelatedWords = 6
)

// WordDetails is the canonical child-friendly record describing a vocabulary word.
type WordDetails struct {
	Word             string     `json:"word"`
	Pronunciation    string     `json:"pronunciation"`
	Definition       string     `json:"definition"`
	SimpleDefinition string     `json:"simpleDefinition"`
	Example          string     `json:"example"`
	MemoryTip        string     `json:"memoryTip"`
	RelatedWords     []string   `json:"relatedWords"`
	Difficulty       Difficulty `json:"difficulty"`
	AudioURL         *string    `json:"audioUrl,omitempty"`
	Source           WordSource `json:"source"`
}

// Validate checks that the record is fully populated. Example may be empty.
func (w WordDetails) Validate() error {
	var errs []FieldError
	if w.Word == "" || w.Word != strings.ToLower(w.Word) {
		errs = append(errs, FieldError{Field: "word", Message: "must be non-empty lowercase"})
	}
	if w.Pronunciation == "" {
		errs = append(errs, FieldError{Field: "pronunciation", Message: "required"})
	}
	if w.Definition == "" {
		errs = append(errs, FieldError{Field: "definition", Message: "required"})
	}
	if w.SimpleDefinition == "" || utf8.RuneCountInString(w.SimpleDefinition) > MaxSimpleDefinition {
		errs = append(errs, FieldError{Field: "simpleDefinition", Message: "required, max 140 characters"})
	}
	if w.MemoryTip == "" {
		errs = append(errs, FieldError{Field: "memoryTip", Message: "required"})
	}
	if len(w.RelatedWords) == 0 || len(w.RelatedWords) > MaxRelatedWords {
		errs = append(errs, FieldError{Field: "relatedWords", Message: "must contain 1 to 6 words"})
	}
	if !w.Difficulty.IsValid() {
		errs = append(errs, FieldError{Field: "difficulty", Message: "must be easy, medium or advanced"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// DifficultyFor derives a difficulty tier from the word's length in runes:
// up to 4 is easy, up to 7 is medium, anything longer is advanced.
func DifficultyFor(word string) Difficulty {
	n := utf8.RuneCountInString(word)
	switch {
	case n <= 4:
		return DifficultyEasy
	case n <= 7:
		return DifficultyMedium
	default:
		return DifficultyAdvanced
	}
}

// RelatedWordsFor returns the fixed related-word list for the word's length tier.
// A fresh slice is returned on every call.
func RelatedWordsFor(word string) []string {
	switch DifficultyFor(word) {
	case DifficultyEasy:
		return []string{"cat", "sun", "map", "red"}
	case DifficultyMedium:
		return []string{"planet", "garden", "rocket", "friend"}
	default:
		return []string{"adventure", "discovery", "imagination", "curious"}
	}
}

// MemoryTip builds the mnemonic shared by every tier.
func MemoryTip(word string) string {
	prefix := word
	if utf8.RuneCountInString(word) > 3 {
		prefix = string([]rune(word)[:3])
	}
	return fmt.Sprintf("Remember: '%s' starts with '%s' — say it slowly and clap the syllables", word, prefix)
}

// SimpleDefinition shortens a definition to at most 140 runes. Longer input
// keeps its first 137 runes followed by "...".
func SimpleDefinition(definition string) string {
	definition = strings.TrimSpace(definition)
	runes := []rune(definition)
	if len(runes) <= MaxSimpleDefinition {
		return definition
	}
	return string(runes[:MaxSimpleDefinition-3]) + "..."
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
