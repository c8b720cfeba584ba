package provider

// DictionaryResult is the structured result from a dictionary API provider.
// It holds the first entry returned by the provider with its meaning grouping intact.
type DictionaryResult struct {
	Word      string
	Phonetic  string
	Phonetics []PhoneticResult
	Meanings  []MeaningResult
}

// PhoneticResult is one transcription and/or audio recording.
type PhoneticResult struct {
	Text     string
	AudioURL string
}

// MeaningResult groups definitions sharing a part of speech.
type MeaningResult struct {
	PartOfSpeech string
	Definitions  []DefinitionResult
	Synonyms     []string
}

// DefinitionResult is a single definition with an optional example.
type DefinitionResult struct {
	Definition string
	Example    string
	Synonyms   []string
}
