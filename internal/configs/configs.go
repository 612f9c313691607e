package configs

import (
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/GoMudEngine/textkit/internal/applog"
	"github.com/GoMudEngine/textkit/internal/fileloader"
	"github.com/GoMudEngine/textkit/internal/util"
	"github.com/pkg/errors"
)

type ConfigString string
type ConfigInt int
type ConfigBool bool

func (s ConfigString) String() string { return string(s) }

type Config struct {
	Logging    Logging    `yaml:"Logging"`
	Truncate   Truncate   `yaml:"Truncate"`
	Casing     Casing     `yaml:"Casing"`
	Inflection Inflection `yaml:"Inflection"`
	Batch      Batch      `yaml:"Batch"`

	validated bool
}

var (
	configData     = Config{}
	configDataLock sync.RWMutex
)

// Default returns a validated configuration with every default filled in.
func Default() Config {
	c := Config{}
	c.SetDefaults()
	return c
}

// Validate rejects values that cannot be corrected by SetDefaults.
func (c Config) Validate() error {
	switch strings.ToLower(c.Logging.Format.String()) {
	case ``, `text`, `json`:
	default:
		return errors.New(`Logging.Format must be "text" or "json", got "` + c.Logging.Format.String() + `"`)
	}

	for word := range c.Inflection.PluralOverrides {
		if strings.TrimSpace(word) == `` {
			return errors.New(`Inflection.PluralOverrides contains an empty word`)
		}
	}
	for word := range c.Inflection.SingularOverrides {
		if strings.TrimSpace(word) == `` {
			return errors.New(`Inflection.SingularOverrides contains an empty word`)
		}
	}

	return nil
}

// SetDefaults fills in missing values and clamps out of range ones.
func (c *Config) SetDefaults() {
	c.Logging.setDefaults()
	c.Truncate.setDefaults()
	c.Inflection.setDefaults()
	c.Batch.setDefaults()
	c.validated = true
}

// Load reads a yaml/json config file, applies env overrides and defaults, and makes it
// the current configuration. An empty path loads defaults plus env overrides.
func Load(path string) (Config, error) {

	c := Config{}

	if path != `` {
		loaded, err := fileloader.LoadFlatFile[Config](path)
		if err != nil {
			return c, errors.Wrap(err, `loading config`)
		}
		c = loaded
	}

	if err := applyEnv(reflect.ValueOf(&c).Elem()); err != nil {
		return c, errors.Wrap(err, `applying environment overrides`)
	}

	if err := c.Validate(); err != nil {
		return c, err
	}

	if c.Inflection.OverridesPath != `` {
		if err := c.Inflection.loadWordLists(); err != nil {
			return c, err
		}
	}

	c.SetDefaults()

	configDataLock.Lock()
	configData = c
	configDataLock.Unlock()

	applog.Debug("Config loaded", "path", path, "plurals", len(c.Inflection.PluralOverrides), "singulars", len(c.Inflection.SingularOverrides))

	return c, nil
}

// Get returns the current configuration.
func Get() Config {
	configDataLock.RLock()
	defer configDataLock.RUnlock()

	if !configData.validated {
		c := configData
		c.SetDefaults()
		return c
	}
	return configData
}

// applyEnv sets any field tagged `env:"NAME"` from the environment when NAME is set.
func applyEnv(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := v.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := applyEnv(fv); err != nil {
				return err
			}
			continue
		}

		name := field.Tag.Get(`env`)
		if name == `` {
			continue
		}
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}

		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Int:
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return errors.Wrap(err, name)
			}
			fv.SetInt(int64(n))
		case reflect.Bool:
			// "1", "yes" and "true" switch a flag on, anything else switches it off
			fv.SetBool(util.Bool(strings.ToLower(strings.TrimSpace(raw))))
		}
	}
	return nil
}
