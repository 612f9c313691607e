package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	hexOnly := regexp.MustCompile(`^[0-9a-f]*$`)

	for _, length := range []int{DEFAULT_TOKEN_LENGTH, 128, 7, 1} {
		token, err := Token(length)
		require.NoError(t, err)
		require.Len(t, token, length)
		require.Regexp(t, hexOnly, token)
	}

	a, _ := Token(32)
	b, _ := Token(32)
	require.NotEqual(t, a, b)

	empty, err := Token(0)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestMoustaches(t *testing.T) {
	tests := []struct {
		template string
		params   map[string]string
		expected string
	}{
		{"Hello {name}", map[string]string{"name": "world"}, "Hello world"},
		{"{count} {noun}", map[string]string{"count": "3", "noun": "mice"}, "3 mice"},
		{"{a}{ab}", map[string]string{"a": "1", "ab": "2"}, "12"},
		{"{missing} stays", map[string]string{"name": "x"}, "{missing} stays"},
		{"{name}", map[string]string{"name": "{name}"}, "{name}"},
		{"no params", nil, "no params"},
	}

	for _, test := range tests {
		t.Run(test.template, func(t *testing.T) {
			require.Equal(t, test.expected, Moustaches(test.template, test.params))
		})
	}
}

func TestJoin(t *testing.T) {
	require.Equal(t, "one/two/three", Join("/", "one/", "/two", "//three//"))
	require.Equal(t, "a, b", Join(", ", "a, ", "b"))
	require.Equal(t, "ab", Join("", "a", "b"))
	require.Equal(t, "", Join("-"))
}

func TestBool(t *testing.T) {
	for _, s := range []string{"1", "yes", "true"} {
		require.True(t, Bool(s), s)
	}
	for _, s := range []string{"0", "no", "false", "TRUE", "", "on"} {
		require.False(t, Bool(s), s)
	}
}

func TestNormalise(t *testing.T) {
	require.Equal(t, "hello-world-again", Normalise("Hello, World - again"))
	require.Equal(t, "one-two", Normalise("one   two"))
	require.Equal(t, "snakecase", Normalise("snake_case"))
	require.Equal(t, "-padded-", Normalise(" padded "))
}
