package language

import "strings"

// English only. Nothing here knows about other languages' plural rules.

type suffixRule struct {
	name      string
	matches   func(word []rune) bool
	transform func(word []rune) string
}

var (
	irregularPlurals = map[string]string{
		"child":  "children",
		"foot":   "feet",
		"goose":  "geese",
		"man":    "men",
		"mouse":  "mice",
		"person": "people",
		"sheep":  "sheep",
		"tooth":  "teeth",
	}

	// plural -> singular, derived from irregularPlurals
	irregularSingulars = invert(irregularPlurals)

	uncountables = map[string]struct{}{
		"sheep":       {},
		"fish":        {},
		"deer":        {},
		"series":      {},
		"species":     {},
		"money":       {},
		"rice":        {},
		"information": {},
		"equipment":   {},
	}

	vowels = map[rune]struct{}{
		'a': {},
		'e': {},
		'i': {},
		'o': {},
		'u': {},
	}

	// Evaluated top to bottom, first match wins.
	pluralRules = []suffixRule{
		{ // baby -> babies, lady -> ladies
			name:      "consonant+y",
			matches:   func(w []rune) bool { return endsWith(w, "y") && !isVowel(fromEnd(w, 2)) },
			transform: func(w []rune) string { return string(w[:len(w)-1]) + "ies" },
		},
		{ // leaf -> leaves, knife -> knives
			name:    "f/fe",
			matches: func(w []rune) bool { return endsWith(w, "f") || endsWith(w, "fe") },
			transform: func(w []rune) string {
				if endsWith(w, "fe") {
					return string(w[:len(w)-2]) + "ves"
				}
				return string(w[:len(w)-1]) + "ves"
			},
		},
		{ // mango -> mangoes, volcano -> volcanoes
			name:      "consonant+o",
			matches:   func(w []rune) bool { return endsWith(w, "o") && !isVowel(fromEnd(w, 2)) },
			transform: func(w []rune) string { return string(w) + "es" },
		},
		{ // match, dish, glass, bus, fox, buzz
			name: "sibilant",
			matches: func(w []rune) bool {
				for _, suffix := range []string{"ch", "sh", "ss", "s", "x", "z"} {
					if endsWith(w, suffix) {
						return true
					}
				}
				return false
			},
			transform: func(w []rune) string { return string(w) + "es" },
		},
		{ // cat -> cats, boy -> boys, radio -> radios
			name:      "default",
			matches:   func(w []rune) bool { return true },
			transform: func(w []rune) string { return string(w) + "s" },
		},
	}

	singularRules = []suffixRule{
		{ // babies -> baby
			name:      "ies",
			matches:   func(w []rune) bool { return endsWith(w, "ies") },
			transform: func(w []rune) string { return string(w[:len(w)-3]) + "y" },
		},
		{ // leaves -> leaf. Only a vowel four from the end qualifies, so valves falls through.
			name:      "vowel+ves",
			matches:   func(w []rune) bool { return endsWith(w, "ves") && isVowel(fromEnd(w, 4)) },
			transform: func(w []rune) string { return string(w[:len(w)-3]) + "f" },
		},
		{ // buses -> bus, mangoes -> mango
			name:      "es",
			matches:   func(w []rune) bool { return !endsWith(w, "ves") && endsWith(w, "es") },
			transform: func(w []rune) string { return string(w[:len(w)-2]) },
		},
		{ // cats -> cat
			name:      "default",
			matches:   func(w []rune) bool { return true },
			transform: func(w []rune) string { return string(w[:len(w)-trailingS(w)]) },
		},
	}
)

// Pluralize returns the plural of word for the given count.
//
// A count of exactly 1 is a singular context and returns the (trimmed) word untouched.
// If an explicit plural is supplied it is returned verbatim for any other count,
// bypassing the irregular table and the suffix rules.
//
// The uncountable check runs on the trimmed word as given, while the irregular table
// and suffix rules see it lowercased. "fish" stays "fish", "Fish" becomes "fishes".
func Pluralize(word string, count int, explicit ...string) string {

	word = strings.TrimSpace(word)

	if isUncountable(word) && len(explicit) == 0 {
		return word
	}

	if word == `` || count == 1 {
		return word
	}

	if len(explicit) > 0 {
		return explicit[0]
	}

	lower := strings.ToLower(word)
	if plural, ok := irregularPlurals[lower]; ok {
		return plural
	}

	return applyRules(pluralRules, lower)
}

// Singularize mirrors Pluralize. It only transforms when count is exactly 1.
func Singularize(word string, count int, explicit ...string) string {

	word = strings.TrimSpace(word)

	if isUncountable(word) && len(explicit) == 0 {
		return word
	}

	if word == `` || count != 1 {
		return word
	}

	if len(explicit) > 0 {
		return explicit[0]
	}

	lower := strings.ToLower(word)
	if singular, ok := irregularSingulars[lower]; ok {
		return singular
	}

	return applyRules(singularRules, lower)
}

// Plural is Pluralize with a plural count.
func Plural(word string) string {
	return Pluralize(word, 2)
}

// Singular is Singularize with a singular count.
func Singular(word string) string {
	return Singularize(word, 1)
}

// IsUncountable reports whether Pluralize and Singularize leave word unchanged as
// uncountable. Like them it is case sensitive: "fish" is uncountable, "Fish" is not.
func IsUncountable(word string) bool {
	return isUncountable(strings.TrimSpace(word))
}

// IsIrregular reports whether word is a singular or plural in the irregular table.
func IsIrregular(word string) bool {
	lower := strings.ToLower(strings.TrimSpace(word))
	if _, ok := irregularPlurals[lower]; ok {
		return true
	}
	_, ok := irregularSingulars[lower]
	return ok
}

func applyRules(rules []suffixRule, word string) string {
	w := []rune(word)
	for _, rule := range rules {
		if rule.matches(w) {
			return rule.transform(w)
		}
	}
	return word
}

func isUncountable(word string) bool {
	_, ok := uncountables[word]
	return ok
}

func isVowel(ch rune) bool {
	_, ok := vowels[ch]
	return ok
}

// fromEnd returns the rune n positions from the end (1 is the last rune).
// Offsets past the start clamp to the first rune.
func fromEnd(w []rune, n int) rune {
	if len(w) == 0 {
		return 0
	}
	idx := len(w) - n
	if idx < 0 {
		idx = 0
	}
	return w[idx]
}

func endsWith(w []rune, suffix string) bool {
	s := []rune(suffix)
	if len(s) > len(w) {
		return false
	}
	return string(w[len(w)-len(s):]) == suffix
}

func trailingS(w []rune) int {
	if len(w) > 0 && w[len(w)-1] == 's' {
		return 1
	}
	return 0
}

func invert(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
