// ABOUTME: Human display names for model identifiers
// ABOUTME: Strips vendor prefixes and title-cases known model name parts

package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mauromedda/modelmap/internal/reasoning"
)

// DisplayName formats a model identifier for display: the vendor prefix is
// dropped, separators become spaces, and known model words get their
// conventional casing. "copilot-gpt-5.1-codex" -> "GPT 5.1 Codex".
func DisplayName(id string, prefixes []string) string {
	_, base := reasoning.SplitPrefix(id, prefixes)
	base = strings.ReplaceAll(base, "-", " ")
	base = strings.ReplaceAll(base, "_", " ")

	caser := cases.Title(language.English)
	words := strings.Fields(base)
	for i, word := range words {
		switch strings.ToLower(word) {
		case "gpt":
			words[i] = "GPT"
		case "o1", "o3", "o4":
			words[i] = strings.ToUpper(word)
		case "claude":
			words[i] = "Claude"
		case "gemini":
			words[i] = "Gemini"
		case "pro", "mini", "max", "flash", "codex", "opus", "sonnet", "haiku":
			words[i] = caser.String(word)
		default:
			// Version numbers and short tokens stay as-is
			if len(word) <= 3 {
				words[i] = word
			} else {
				words[i] = caser.String(word)
			}
		}
	}
	return strings.Join(words, " ")
}
