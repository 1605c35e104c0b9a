package sender

import (
	"strings"
	"unicode/utf8"
)

const truncationMarker = "\n…"

// Truncate shortens text to at most limit characters. The cut is made after
// the last whole line that fits and the marker line shows that lines were
// dropped.
func Truncate(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}

	room := limit - utf8.RuneCountInString(truncationMarker)
	if room <= 0 {
		return string([]rune(text)[:max(limit, 0)])
	}

	head := string([]rune(text)[:room])
	if i := strings.LastIndexByte(head, '\n'); i > 0 {
		head = head[:i]
	}

	return head + truncationMarker
}
