package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GoMudEngine/textkit/internal/fileloader"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestDefault(t *testing.T) {
	c := Default()

	require.Equal(t, ConfigString("info"), c.Logging.Level)
	require.Equal(t, ConfigString("text"), c.Logging.Format)
	require.Equal(t, ConfigInt(10), c.Logging.MaxSizeMB)
	require.Equal(t, "...", c.Truncate.SuffixString())
	require.False(t, bool(c.Truncate.RespectWords))
	require.Equal(t, ConfigInt(512), c.Batch.CacheSize)
	require.NotNil(t, c.Inflection.PluralOverrides)
	require.NotNil(t, c.Inflection.SingularOverrides)
}

func TestSetDefaultsClamps(t *testing.T) {
	c := Config{}
	c.Batch.CacheSize = 3
	c.Logging.MaxSizeMB = 99999
	c.Logging.MaxBackups = -4
	c.SetDefaults()

	require.Equal(t, ConfigInt(16), c.Batch.CacheSize)
	require.Equal(t, ConfigInt(1024), c.Logging.MaxSizeMB)
	require.Equal(t, ConfigInt(0), c.Logging.MaxBackups)

	c.Batch.CacheSize = 1 << 20
	c.SetDefaults()
	require.Equal(t, ConfigInt(65536), c.Batch.CacheSize)
}

func TestLoadYaml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textkit.yaml")
	writeFile(t, path, `
Logging:
  Level: debug
  Format: json
Truncate:
  Suffix: ""
  RespectWords: true
Casing:
  AllowedChars: "-."
Inflection:
  PluralOverrides:
    octopus: octopi
  SingularOverrides:
    octopi: octopus
Batch:
  CacheSize: 64
`)

	c, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ConfigString("debug"), c.Logging.Level)
	require.Equal(t, ConfigString("json"), c.Logging.Format)
	require.Equal(t, "", c.Truncate.SuffixString(), "an explicit empty suffix is kept")
	require.True(t, bool(c.Truncate.RespectWords))
	require.Equal(t, []rune{'-', '.'}, c.Casing.AllowedRunes())
	require.Equal(t, ConfigInt(64), c.Batch.CacheSize)

	plural, ok := c.Inflection.PluralOverride(" octopus ")
	require.True(t, ok)
	require.Equal(t, "octopi", plural)

	singular, ok := c.Inflection.SingularOverride("octopi")
	require.True(t, ok)
	require.Equal(t, "octopus", singular)

	_, ok = c.Inflection.PluralOverride("cat")
	require.False(t, ok)

	require.Equal(t, c.Batch.CacheSize, Get().Batch.CacheSize)
}

func TestLoadRejectsBadFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "textkit.yaml")
	writeFile(t, path, "Logging:\n  Format: xml\n")

	_, err := Load(path)
	require.ErrorContains(t, err, "Logging.Format")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TEXTKIT_LOG_LEVEL", "warn")
	t.Setenv("TEXTKIT_CACHE_SIZE", "128")
	t.Setenv("TEXTKIT_TRUNCATE_WORDS", "true")

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ConfigString("warn"), c.Logging.Level)
	require.Equal(t, ConfigInt(128), c.Batch.CacheSize)
	require.True(t, bool(c.Truncate.RespectWords))

	t.Setenv("TEXTKIT_TRUNCATE_WORDS", "yes")
	c, err = Load("")
	require.NoError(t, err)
	require.True(t, bool(c.Truncate.RespectWords))

	t.Setenv("TEXTKIT_TRUNCATE_WORDS", "nope")
	c, err = Load("")
	require.NoError(t, err)
	require.False(t, bool(c.Truncate.RespectWords))

	t.Setenv("TEXTKIT_CACHE_SIZE", "lots")
	_, err = Load("")
	require.ErrorContains(t, err, "TEXTKIT_CACHE_SIZE")
}

func TestLoadWordLists(t *testing.T) {
	dir := t.TempDir()
	lists := filepath.Join(dir, "words")
	writeFile(t, filepath.Join(lists, "a.yaml"), "name: a\nplurals:\n  cactus: cacti\n  octopus: octopodes\n")
	writeFile(t, filepath.Join(lists, "b.json"), `{"name":"b","plurals":{"cactus":"cactuses"},"singulars":{"cacti":"cactus"}}`)

	path := filepath.Join(dir, "textkit.yaml")
	writeFile(t, path, "Inflection:\n  OverridesPath: "+lists+"\n  PluralOverrides:\n    octopus: octopi\n")

	c, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "octopi", c.Inflection.PluralOverrides["octopus"], "config file entries win")
	require.Equal(t, "cacti", c.Inflection.PluralOverrides["cactus"], "lists merge in name order")
	require.Equal(t, "cactus", c.Inflection.SingularOverrides["cacti"])
}

func TestLoadTruncateSuffix(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		expected string
	}{
		{"quoted tilde", "c.yaml", "Truncate:\n  Suffix: \"~\"\n", "~"},
		{"single quoted tilde", "c.yaml", "Truncate:\n  Suffix: '~'\n", "~"},
		{"quoted null", "c.yaml", "Truncate:\n  Suffix: \"null\"\n", "null"},
		{"empty", "c.yaml", "Truncate:\n  Suffix: \"\"\n", ""},
		{"ellipsis rune", "c.yaml", "Truncate:\n  Suffix: \"…\"\n", "…"},
		{"bare null", "c.yaml", "Truncate:\n  Suffix: ~\n", "..."},
		{"absent", "c.yaml", "Truncate:\n  RespectWords: true\n", "..."},
		{"number", "c.yaml", "Truncate:\n  Suffix: 7\n", "7"},
		{"json tilde", "c.json", `{"Truncate":{"Suffix":"~","RespectWords":true}}`, "~"},
		{"json null", "c.json", `{"Truncate":{"Suffix":null}}`, "..."},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), test.file)
			writeFile(t, path, test.content)

			c, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, test.expected, c.Truncate.SuffixString())
		})
	}

	path := filepath.Join(t.TempDir(), "c.yaml")
	writeFile(t, path, "Truncate:\n  Suffix: [a, b]\n")
	_, err := Load(path)
	require.ErrorContains(t, err, "Truncate.Suffix")
}

func TestDefaultRoundTripsThroughSave(t *testing.T) {
	for _, name := range []string{"textkit.yaml", "textkit.json"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, fileloader.SaveFlatFile(path, Default(), fileloader.SaveCareful))

			c, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, "...", c.Truncate.SuffixString())
			require.Equal(t, ConfigInt(512), c.Batch.CacheSize)
			require.Equal(t, ConfigString("info"), c.Logging.Level)
		})
	}

	empty := Default()
	empty.Truncate.SetSuffix("")
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, fileloader.SaveFlatFile(path, empty))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "", c.Truncate.SuffixString(), "an empty suffix survives a save")
}
