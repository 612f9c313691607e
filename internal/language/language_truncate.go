package language

import (
	"unicode"
	"unicode/utf8"
)

const (
	DEFAULT_TRUNCATE_SUFFIX = `...`
)

// Truncate shortens text to maxLength characters, cutting at exactly the character
// needed to fit the suffix ("..." unless one is given).
//
// Text that already fits is returned as is, without a suffix.
func Truncate(text string, maxLength int, suffix ...string) string {
	return truncate(text, maxLength, suffixOrDefault(suffix), false)
}

// TruncateWords is Truncate, but the cut is moved back to the nearest whitespace when
// one exists within the budget. Without one it cuts exactly like Truncate.
func TruncateWords(text string, maxLength int, suffix ...string) string {
	return truncate(text, maxLength, suffixOrDefault(suffix), true)
}

// Lengths are in runes, not bytes.
func truncate(text string, maxLength int, suffix string, words bool) string {

	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	budget := maxLength - utf8.RuneCountInString(suffix)
	if budget < 0 {
		budget = 0
	}

	r := []rune(text)

	if words {
		if cut := wordBoundary(r, budget); cut > 0 {
			return string(r[:cut]) + suffix
		}
	}

	return string(r[:budget]) + suffix
}

// wordBoundary returns the length of the longest prefix of 1..budget runes that is
// followed by whitespace or the end of the text, or 0 if there is none.
func wordBoundary(r []rune, budget int) int {
	if budget > len(r) {
		budget = len(r)
	}
	for cut := budget; cut > 0; cut-- {
		if cut == len(r) || unicode.IsSpace(r[cut]) {
			return cut
		}
	}
	return 0
}

func suffixOrDefault(suffix []string) string {
	if len(suffix) > 0 {
		return suffix[0]
	}
	return DEFAULT_TRUNCATE_SUFFIX
}
