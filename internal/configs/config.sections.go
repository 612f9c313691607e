package configs

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/GoMudEngine/textkit/internal/fileloader"
	"github.com/pkg/errors"
)

type Logging struct {
	Level      ConfigString `yaml:"Level" env:"TEXTKIT_LOG_LEVEL"`   // debug, info, warn, error
	Format     ConfigString `yaml:"Format" env:"TEXTKIT_LOG_FORMAT"` // text or json
	File       ConfigString `yaml:"File" env:"TEXTKIT_LOG_FILE"`     // Optional log file, rotated by size
	MaxSizeMB  ConfigInt    `yaml:"MaxSizeMB"`
	MaxBackups ConfigInt    `yaml:"MaxBackups"`
}

type Truncate struct {
	Suffix       ConfigString `yaml:"Suffix" json:"Suffix"`
	RespectWords ConfigBool   `yaml:"RespectWords" json:"RespectWords" env:"TEXTKIT_TRUNCATE_WORDS"`

	suffixSet bool // unset means "...", an empty string is a valid suffix
}

// truncateFile is Truncate as it appears on disk. Suffix is decoded loosely so a
// quoted "~" or "null" stays a string while a bare null leaves it unset.
type truncateFile struct {
	Suffix       interface{} `yaml:"Suffix" json:"Suffix"`
	RespectWords ConfigBool  `yaml:"RespectWords" json:"RespectWords"`
}

type Casing struct {
	AllowedChars ConfigString `yaml:"AllowedChars"` // Extra characters kept as part of words
}

type Inflection struct {
	// word -> explicit form, passed to the engine as its override
	PluralOverrides   map[string]string `yaml:"PluralOverrides"`
	SingularOverrides map[string]string `yaml:"SingularOverrides"`
	// Optional directory of yaml/json word lists merged into the maps above
	OverridesPath ConfigString `yaml:"OverridesPath" env:"TEXTKIT_OVERRIDES_PATH"`
}

type Batch struct {
	CacheSize ConfigInt `yaml:"CacheSize" env:"TEXTKIT_CACHE_SIZE"`
}

// WordList is one file under Inflection.OverridesPath.
type WordList struct {
	Name      string            `yaml:"name" json:"name"`
	Plurals   map[string]string `yaml:"plurals" json:"plurals"`
	Singulars map[string]string `yaml:"singulars" json:"singulars"`
}

func (w WordList) Id() string { return w.Name }

func (w WordList) Validate() error {
	if strings.TrimSpace(w.Name) == `` {
		return errors.New(`word list has no name`)
	}
	return nil
}

func (l *Logging) setDefaults() {
	if l.Level == `` {
		l.Level = `info`
	}
	if l.Format == `` {
		l.Format = `text`
	}
	if l.MaxSizeMB < 1 {
		l.MaxSizeMB = 10
	} else if l.MaxSizeMB > 1024 {
		l.MaxSizeMB = 1024
	}
	if l.MaxBackups < 0 {
		l.MaxBackups = 0
	}
}

func (t *Truncate) setDefaults() {
	if !t.suffixSet {
		t.SetSuffix(`...`)
	}
}

// SetSuffix sets the suffix explicitly, including to an empty string.
func (t *Truncate) SetSuffix(suffix string) {
	t.Suffix = ConfigString(suffix)
	t.suffixSet = true
}

// SuffixString returns the configured suffix.
func (t Truncate) SuffixString() string {
	if !t.suffixSet {
		return `...`
	}
	return t.Suffix.String()
}

func (t *Truncate) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw truncateFile
	if err := unmarshal(&raw); err != nil {
		return err
	}
	return t.fromFile(raw)
}

func (t *Truncate) UnmarshalJSON(data []byte) error {
	var raw truncateFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	return t.fromFile(raw)
}

func (t *Truncate) fromFile(raw truncateFile) error {
	*t = Truncate{RespectWords: raw.RespectWords}

	switch v := raw.Suffix.(type) {
	case nil:
	case string:
		t.SetSuffix(v)
	case map[interface{}]interface{}, map[string]interface{}, []interface{}:
		return errors.New(`Truncate.Suffix must be a string`)
	default:
		t.SetSuffix(fmt.Sprint(v))
	}
	return nil
}

// AllowedRunes returns AllowedChars as the rune list the case converters take.
func (c Casing) AllowedRunes() []rune {
	return []rune(c.AllowedChars.String())
}

func (i *Inflection) setDefaults() {
	if i.PluralOverrides == nil {
		i.PluralOverrides = map[string]string{}
	}
	if i.SingularOverrides == nil {
		i.SingularOverrides = map[string]string{}
	}
}

// PluralOverride returns the configured plural for word, if any.
func (i Inflection) PluralOverride(word string) (string, bool) {
	p, ok := i.PluralOverrides[strings.TrimSpace(word)]
	return p, ok
}

// SingularOverride returns the configured singular for word, if any.
func (i Inflection) SingularOverride(word string) (string, bool) {
	s, ok := i.SingularOverrides[strings.TrimSpace(word)]
	return s, ok
}

// loadWordLists merges every word list under OverridesPath. Entries already in the
// config file win over the lists.
func (i *Inflection) loadWordLists() error {
	lists, err := fileloader.LoadAllFlatFiles[string, WordList](i.OverridesPath.String())
	if err != nil {
		return errors.Wrap(err, `Inflection.OverridesPath`)
	}

	// Lists are merged in name order, the first list to define a word wins.
	i.setDefaults()
	for _, name := range slices.Sorted(maps.Keys(lists)) {
		list := lists[name]
		for word, plural := range list.Plurals {
			if _, ok := i.PluralOverrides[word]; !ok {
				i.PluralOverrides[word] = plural
			}
		}
		for word, singular := range list.Singulars {
			if _, ok := i.SingularOverrides[word]; !ok {
				i.SingularOverrides[word] = singular
			}
		}
	}
	return nil
}

func (b *Batch) setDefaults() {
	if b.CacheSize == 0 {
		b.CacheSize = 512
	}
	if b.CacheSize < 16 {
		b.CacheSize = 16
	} else if b.CacheSize > 65536 {
		b.CacheSize = 65536
	}
}
