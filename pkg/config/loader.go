package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
)

// EnvPrefix marks environment variables read by Load. A double underscore
// separates nesting levels: SITEGEN_SITE__BASE_URL sets site.base_url.
const EnvPrefix = "SITEGEN_"

// Names searched by Discover, in order.
var searchNames = []string{"sitegen.yaml", "sitegen.yml", "sitegen.toml"}

// Load builds the configuration from defaults, the optional file at path and
// the environment, in that order of precedence, then validates it.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.ErrConfigLoad, "load defaults")
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); err != nil {
			return nil, siteerrors.Wrapf(err, siteerrors.ErrConfigLoad, "config file %s", path).
				WithDetail("path", path)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, siteerrors.Wrapf(err, siteerrors.ErrConfigParse, "parse config file %s", path).
				WithDetail("path", path)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.ErrConfigLoad, "load environment")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, siteerrors.Wrap(err, siteerrors.ErrConfigParse, "decode configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Discover returns the first config file found in dir, falling back to
// $XDG_CONFIG_HOME/sitegen/config.{yaml,toml}. It returns "" when none exists.
func Discover(dir string) string {
	for _, name := range searchNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	for _, name := range []string{"config.yaml", "config.toml"} {
		if found, err := xdg.SearchConfigFile(filepath.Join("sitegen", name)); err == nil {
			return found
		}
	}
	return ""
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, siteerrors.Newf(siteerrors.ErrConfigParse, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}
