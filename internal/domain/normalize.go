package domain

import "strings"

// NormalizeText turns user input into the key words are stored under:
// lowercase, trimmed, with every whitespace run (tabs and newlines included)
// collapsed to one space. Hyphens, apostrophes and diacritics are kept, so
// "Well-Known" and "well-known" share a row but "café" and "cafe" do not.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
