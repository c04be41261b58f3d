package config

import (
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/arthur-debert/stampstore/pkg/codec"
	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "STAMPSTORE_"

// Config is the full stampstore configuration
type Config struct {
	Storage Storage `koanf:"storage"`
	Workers Workers `koanf:"workers"`
	Logging Logging `koanf:"logging"`
}

// Storage holds settings for the record store
type Storage struct {
	Root     string      `koanf:"root"`
	Codec    string      `koanf:"codec"`
	Compress bool        `koanf:"compress"`
	DirPerm  os.FileMode `koanf:"dir_perm"`
	FilePerm os.FileMode `koanf:"file_perm"`
}

// Workers holds batch read settings
type Workers struct {
	Size int `koanf:"size"`
}

// Logging holds logging settings
type Logging struct {
	Level string `koanf:"level"`
}

// Load builds the configuration. userFile is optional; when required is
// true a missing userFile is an error, otherwise it is skipped.
func Load(userFile string, required bool) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userFile).
					WithDetail("path", userFile)
			}
		} else if required {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", userFile).
				WithDetail("path", userFile)
		}
	}

	// 3. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToFileModeHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps STAMPSTORE_STORAGE_DIR_PERM to storage.dir_perm: the first
// segment names the section, the rest is the key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, key, found := strings.Cut(s, "_")
	if !found {
		return s
	}
	return section + "." + key
}

// stringToFileModeHookFunc parses octal strings such as "0755" into os.FileMode
func stringToFileModeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(os.FileMode(0)) {
			return data, nil
		}
		raw := strings.TrimPrefix(strings.TrimSpace(data.(string)), "0o")
		mode, err := strconv.ParseUint(raw, 8, 32)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid file mode %q", data)
		}
		return os.FileMode(mode), nil
	}
}

// Validate checks values the store cannot work with
func (c *Config) Validate() error {
	if _, err := codec.ByName(c.Storage.Codec, c.Storage.Compress); err != nil {
		return errors.Newf(errors.ErrConfigValid, "storage.codec %q is not supported", c.Storage.Codec).
			WithDetail("supported", []string{codec.NameJSON, codec.NameYAML, codec.NameTOML})
	}
	if c.Storage.DirPerm == 0 || c.Storage.DirPerm&^os.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigValid, "storage.dir_perm %o is not a permission mode", c.Storage.DirPerm)
	}
	if c.Storage.FilePerm == 0 || c.Storage.FilePerm&^os.ModePerm != 0 {
		return errors.Newf(errors.ErrConfigValid, "storage.file_perm %o is not a permission mode", c.Storage.FilePerm)
	}
	if c.Workers.Size < 1 {
		return errors.Newf(errors.ErrConfigValid, "workers.size must be at least 1, got %d", c.Workers.Size)
	}
	return nil
}

// Codec resolves the configured codec
func (c *Config) Codec() (codec.Codec, error) {
	return codec.ByName(c.Storage.Codec, c.Storage.Compress)
}
