// Package langdetect provides language detection for code content.
// It uses go-enry to detect programming languages from fenced code blocks,
// primarily so "inspect" can report languages for unlabeled fences.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// langText is returned when detection fails or confidence is low.
const langText = "text"

// candidates are the languages offered to the classifier. README snippets
// overwhelmingly fall into this set.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// Detect returns the detected language identifier for code content.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(strings.TrimSpace(string(content))) == 0 {
		return langText
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Fall back to the classifier; only trust confident results.
	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// normalize maps enry language names to common fence identifiers.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	case "C++":
		return "cpp"
	default:
		return strings.ToLower(lang)
	}
}
