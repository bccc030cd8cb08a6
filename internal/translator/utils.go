package translator

import "strings"

// stripCodeFence isolates the raw query from a completion that wrapped it in
// markdown fences, with or without a language tag.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")

	// drop a language tag on the opening fence line ("sql", "postgresql", ...)
	if idx := strings.Index(text, "\n"); idx != -1 {
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine == "" || isLanguageTag(firstLine) {
			text = text[idx+1:]
		}
	}

	if idx := strings.LastIndex(text, "```"); idx != -1 {
		text = text[:idx]
	}

	return strings.TrimSpace(text)
}

func isLanguageTag(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}

	return true
}
