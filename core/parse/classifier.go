// ABOUTME: State classifier buckets trimmed input text into coarse shape categories
// ABOUTME: The resulting state selects which ordered parser list the pipeline runs

package parse

import (
	"strings"
	"unicode"

	"github.com/mrdear/time-convert/core/domain"
)

// Classify inspects the shape of trimmed input text and returns the parse
// state driving parser dispatch. It is a pure function.
func Classify(text string) domain.ParseState {
	if text == "" {
		return domain.StateUnknown
	}

	runes := []rune(text)
	first := runes[0]

	switch {
	case first >= '0' && first <= '9':
		if allDigits(text) {
			return domain.StateDigit
		}
		if strings.ContainsRune(text, '-') {
			return domain.StateDigitDash
		}
		if strings.ContainsRune(text, '/') {
			return domain.StateDigitSlash
		}
		if containsAlpha(runes) {
			return domain.StateDigitAlpha
		}
		return domain.StateDigit
	case isLatinLetter(first):
		return domain.StateAlpha
	default:
		return domain.StateUnknown
	}
}

// allDigits reports whether the string consists solely of ASCII digits.
func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// containsAlpha reports whether any rune is a Latin letter or a CJK
// ideograph (as in the Chinese calendar suffixes 年/月/日).
func containsAlpha(runes []rune) bool {
	for _, r := range runes {
		if isLatinLetter(r) || unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

func isLatinLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
