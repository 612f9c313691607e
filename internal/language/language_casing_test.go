package language

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToPascalAndCamel(t *testing.T) {
	tests := []struct {
		phrase string
		camel  string
	}{
		{"my_phrase", "myPhrase"},
		{"one two three", "oneTwoThree"},
		{"ONE two", "oneTwo"},
		{"  leading.and..trailing  ", "leadingAndTrailing"},
		{"api v2 key", "apiV2Key"},
		{"", ""},
	}

	for _, test := range tests {
		t.Run(test.phrase, func(t *testing.T) {
			require.Equal(t, test.camel, ToCamel(test.phrase))
			require.Equal(t, upperFirst(test.camel), ToPascal(test.phrase))
		})
	}
}

func TestToPascalAllowedChars(t *testing.T) {
	require.Equal(t, "OneTwo", ToPascal("one-two"))
	require.Equal(t, "One-two", ToPascal("one-two", '-'))
	require.Equal(t, "One.two-three", ToPascal("one.two-three", '.', '-'))
	require.Equal(t, "A]b", ToPascal("a]b", ']'))
}

func TestInvalidAllowedRunesAreIgnored(t *testing.T) {
	for _, r := range []rune{0x110000, -1, 0xD800} {
		require.NotPanics(t, func() { ToPascal("a b", r) })
		require.Equal(t, "AB", ToPascal("a b", r))
		require.Equal(t, "aB", ToCamel("a b", r))
		require.Equal(t, "a_b", ToSnake("a b", r))
		require.Equal(t, []string{"a", "b"}, Words("a b", r))
	}

	require.Equal(t, "A-bC", ToPascal("a-b c", -1, '-'))
	require.Same(t, defaultSeparatorRun, separatorRun([]rune{-1}))
}

func TestSeparatorRunIsCached(t *testing.T) {
	first := separatorRun([]rune{'~'})
	require.Same(t, first, separatorRun([]rune{'~'}))
	require.NotSame(t, first, separatorRun([]rune{'~', '.'}))
	require.Same(t, defaultSeparatorRun, separatorRun(nil))
}

func TestToSnake(t *testing.T) {
	tests := []struct {
		phrase string
		snake  string
	}{
		{"one two three", "one_two_three"},
		{"one.two.three", "one_two_three"},
		{"oneTwoThree", "one_two_three"},
		{"OneTwoThree", "one_two_three"},
		{"HTTPServer", "h_t_t_p_server"},
		{"", ""},
	}

	for _, test := range tests {
		t.Run(test.phrase, func(t *testing.T) {
			require.Equal(t, test.snake, ToSnake(test.phrase))
		})
	}

	require.Equal(t, "one-two_three", ToSnake("one-two three", '-'))
}

func TestCaseConversionIsLossy(t *testing.T) {
	require.Equal(t, "h_t_t_p", ToSnake(ToPascal("h_t_t_p")))
	require.Equal(t, "one_two", ToSnake(ToPascal("one__two")))
	require.NotEqual(t, ToSnake("HTTP server"), ToSnake(ToPascal("HTTP server")))
}

func TestWords(t *testing.T) {
	require.Equal(t, []string{"one", "two", "three"}, Words("One, two & THREE!"))
	require.Equal(t, []string{"one-two"}, Words("one-two", '-'))
	require.Empty(t, Words("  ...  "))
}
