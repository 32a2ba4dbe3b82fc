package config

import (
	"strings"

	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable twcfg reads
const EnvPrefix = "TWCFG_"

// Settings configure the twcfg command. They never end up in a document.
type Settings struct {
	// Root is the project root searched for the conventional file
	Root string `koanf:"root"`
	// Config is an explicit document path; it wins over discovery
	Config string `koanf:"config"`
	// Format is the output encoding for show and gen-config
	Format string `koanf:"format"`
	// NoColor disables styled output
	NoColor bool `koanf:"no_color"`
}

var settingKeys = map[string]bool{
	"root":     true,
	"config":   true,
	"format":   true,
	"no_color": true,
}

func defaultSettings() map[string]interface{} {
	return map[string]interface{}{
		"root":     "",
		"config":   "",
		"format":   FormatTOML.String(),
		"no_color": false,
	}
}

// LoadSettings layers defaults, TWCFG_ environment variables and the given
// overrides (typically flags the user set), in increasing priority.
func LoadSettings(overrides map[string]interface{}) (*Settings, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaultSettings(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load default settings")
	}

	// 2. Environment. Unrelated TWCFG_ variables (directory overrides read
	// by pkg/paths) are skipped.
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if !settingKeys[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load env vars")
	}

	// 3. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to load setting overrides")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid settings")
	}

	if _, err := ParseFormat(s.Format); err != nil {
		return nil, errors.Wrap(err, errors.ErrInvalidInput, "invalid TWCFG_FORMAT")
	}

	return &s, nil
}

// OutputFormat returns the parsed output format
func (s *Settings) OutputFormat() Format {
	f, err := ParseFormat(s.Format)
	if err != nil {
		return FormatTOML
	}
	return f
}
