package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/archimedix/biblioteca.archimedica.eu/pkg/errors"
	"github.com/archimedix/biblioteca.archimedica.eu/pkg/logging"
)

const (
	// EnvPrefix prefixes environment overrides: ATOMDOC_RENDER_MODE sets
	// render.mode.
	EnvPrefix = "ATOMDOC_"
	// DefaultFile is read from the working directory when no file is named.
	DefaultFile = "atomdoc.toml"
)

// Options selects the sources Load reads on top of the defaults.
type Options struct {
	// File is an explicit config file. It must exist.
	File string
	// Dir is searched for DefaultFile when File is empty. Empty means ".".
	Dir string
	// Overrides are dotted keys set from the command line.
	Overrides map[string]interface{}
}

// Load builds the configuration from every source and validates it.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load config file if there is one
	path, err := configPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. Load env vars
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Load command-line overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Trace().
		Str("mode", cfg.Render.Mode).
		Str("offset", cfg.Time.Offset).
		Bool("check", cfg.Check.Enabled).
		Msg("Configuration loaded")
	return &cfg, nil
}

// Default returns the embedded defaults alone.
func Default() *Config {
	k := koanf.New(".")
	var cfg Config
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		panic(err)
	}
	return &cfg
}

func configPath(opts Options) (string, error) {
	if opts.File != "" {
		if _, err := os.Stat(opts.File); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.File).
				WithDetail("path", opts.File)
		}
		return opts.File, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, DefaultFile)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	}
	return toml.Parser()
}
