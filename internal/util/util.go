package util

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	DEFAULT_TOKEN_LENGTH = 64
)

var (
	normaliseStrip    = regexp.MustCompile(`[^a-z0-9\s-]+`)
	normaliseCollapse = regexp.MustCompile(`[\s-]+`)
)

// Token returns a random lowercase hex string of exactly length characters.
func Token(length int) (string, error) {
	if length <= 0 {
		return ``, nil
	}

	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return ``, errors.Wrap(err, `generating token`)
	}

	return hex.EncodeToString(buf)[:length], nil
}

// Moustaches replaces every {key} in template with params[key]. Unknown
// placeholders are left alone.
func Moustaches(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, `{`+k+`}`, params[k])
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// Join trims sep from both ends of each piece, then joins them with sep.
func Join(sep string, pieces ...string) string {
	trimmed := make([]string, len(pieces))
	for i, piece := range pieces {
		trimmed[i] = trimAll(piece, sep)
	}
	return strings.Join(trimmed, sep)
}

func trimAll(s, sep string) string {
	if sep == `` {
		return s
	}
	for strings.HasPrefix(s, sep) {
		s = s[len(sep):]
	}
	for strings.HasSuffix(s, sep) {
		s = s[:len(s)-len(sep)]
	}
	return s
}

// Bool reports whether s is one of "1", "yes" or "true". Anything else is false.
func Bool(s string) bool {
	switch s {
	case `1`, `yes`, `true`:
		return true
	}
	return false
}

// Normalise turns s into a key of lowercase letters, digits and single hyphens.
// "Hello, World - again" becomes "hello-world-again".
func Normalise(s string) string {
	s = strings.ToLower(s)
	s = normaliseStrip.ReplaceAllString(s, ``)
	return normaliseCollapse.ReplaceAllString(s, `-`)
}
