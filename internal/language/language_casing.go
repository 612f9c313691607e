package language

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/cases"
	textlang "golang.org/x/text/language"
)

var (
	upperLetter         = regexp.MustCompile(`([A-Z])`)
	defaultSeparatorRun = regexp.MustCompile(`[^a-z0-9]+`)

	// compiled separator patterns keyed by their character class
	separatorCache, _ = lru.New[string, *regexp.Regexp](64)
)

// ToPascal converts a phrase to PascalCase.
//
// Any run of characters that is not a-z, 0-9 or one of allowed is treated as a single
// word separator. Case and delimiters are discarded, so the conversion is lossy.
func ToPascal(phrase string, allowed ...rune) string {

	phrase = foldLower(phrase)
	phrase = separatorRun(allowed).ReplaceAllString(phrase, ` `)

	var sb strings.Builder
	for _, word := range strings.Split(phrase, ` `) {
		sb.WriteString(upperFirst(word))
	}

	return sb.String()
}

// ToCamel converts a phrase to camelCase (lower camel case).
func ToCamel(phrase string, allowed ...rune) string {
	return lowerFirst(ToPascal(phrase, allowed...))
}

// ToSnake converts a phrase, or a camelCase / PascalCase word, to snake_case.
// Every uppercase letter starts a new word, so "HTTPServer" becomes "h_t_t_p_server".
func ToSnake(phrase string, allowed ...rune) string {

	phrase = upperLetter.ReplaceAllString(phrase, ` $1`)
	phrase = foldLower(strings.TrimSpace(phrase))
	phrase = separatorRun(allowed).ReplaceAllString(phrase, ` `)

	return strings.ReplaceAll(phrase, ` `, `_`)
}

// Words splits a phrase into the lowercase alphanumeric tokens the case converters
// work with.
func Words(phrase string, allowed ...rune) []string {
	phrase = foldLower(phrase)
	return strings.Fields(separatorRun(allowed).ReplaceAllString(phrase, ` `))
}

// separatorRun matches one or more characters outside [a-z0-9] and allowed.
// Runes that are not valid Unicode code points are ignored.
func separatorRun(allowed []rune) *regexp.Regexp {
	var extra strings.Builder
	for _, r := range allowed {
		if !utf8.ValidRune(r) {
			continue
		}
		extra.WriteString(fmt.Sprintf(`\x{%x}`, r))
	}

	if extra.Len() == 0 {
		return defaultSeparatorRun
	}

	class := `[^a-z0-9` + extra.String() + `]+`
	if re, ok := separatorCache.Get(class); ok {
		return re
	}

	re := regexp.MustCompile(class)
	separatorCache.Add(class, re)
	return re
}

func upperFirst(word string) string {
	if word == `` {
		return word
	}
	r := []rune(word)
	return foldUpper(string(r[0])) + string(r[1:])
}

func lowerFirst(word string) string {
	if word == `` {
		return word
	}
	r := []rune(word)
	return foldLower(string(r[0])) + string(r[1:])
}

// A cases.Caser keeps state, so each call gets its own.
func foldLower(s string) string {
	return cases.Lower(textlang.Und).String(s)
}

func foldUpper(s string) string {
	return cases.Upper(textlang.Und).String(s)
}
