package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/envctl/pkg/environ"
	"github.com/arthur-debert/envctl/pkg/errors"
	"github.com/arthur-debert/envctl/pkg/logging"
	"github.com/arthur-debert/envctl/pkg/pathset"
)

// EnvPrefix marks environment variables that override configuration keys.
const EnvPrefix = "ENVCTL_"

// envKeys maps the environment variables read by Load to configuration keys.
// Per-variable rules are not reachable from the environment: variable names
// are case-sensitive and would not survive the key transform.
var envKeys = map[string]string{
	EnvPrefix + "VARIABLE": "variable",
}

// searchNames are tried, in order, under the XDG config directories.
var searchNames = []string{
	"envctl/config.toml",
	"envctl/config.yaml",
	"envctl/config.yml",
}

// Options controls where configuration is read from.
type Options struct {
	// File is an explicit configuration file. It must exist.
	File string
	// SkipUserFile ignores user configuration files altogether.
	SkipUserFile bool
}

// Load builds the configuration from, in increasing priority: the embedded
// defaults, the user file and the environment (ENVCTL_VARIABLE only).
// Empty and unknown ENVCTL_* variables are ignored.
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	source := ""
	if !opts.SkipUserFile {
		path, err := userFile(opts.File)
		if err != nil {
			return nil, err
		}
		if path != "" {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			source = path
		}
	}

	err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(name, value string) (string, interface{}) {
		key, ok := envKeys[name]
		if !ok || value == "" {
			return "", nil
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(pathset.Separator),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	cfg.Source = source

	if cfg.Variable == "" {
		cfg.Variable = DefaultVariable
	}
	if !environ.ValidName(cfg.Variable) {
		return nil, errors.Newf(errors.ErrConfigParse, "invalid variable name %q", cfg.Variable)
	}

	logger.Debug().
		Str("source", cfg.Source).
		Str("variable", cfg.Variable).
		Int("rules", len(cfg.Variables)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// userFile resolves the file to load. An empty result means none was found.
func userFile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	for _, name := range searchNames {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func loadFile(k *koanf.Koanf, path string) error {
	parser, err := parserFor(path)
	if err != nil {
		return err
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path).
			WithDetail(errors.DetailPath, path)
	}
	return nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported config format: %s", path).
			WithDetail(errors.DetailPath, path)
	}
}
