package config

import (
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	siteerrors "github.com/goliatone/go-sitegen/pkg/errors"
)

// Marshal encodes the configuration as "yaml" or "toml".
func (c *Config) Marshal(format string) ([]byte, error) {
	switch format {
	case "", "yaml", "yml":
		return yaml.Marshal(c)
	case "toml":
		return toml.Marshal(c)
	default:
		return nil, siteerrors.Newf(siteerrors.ErrInvalidInput, "unknown format %q", format).
			WithDetail("format", format)
	}
}
