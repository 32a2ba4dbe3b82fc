package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// Format is a document encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported encodings
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON}

// String returns the string representation of the format
func (f Format) String() string {
	return string(f)
}

// Ext returns the canonical file extension, with the dot
func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormat parses a format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml", "":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedFormat, "unknown format: %s (want toml, yaml or json)", s)
	}
}

// FormatFromPath picks the encoding from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.Newf(errors.ErrUnsupportedFormat,
			"cannot tell the format of %s: use a .toml, .yaml, .yml or .json file", filepath.Base(path)).
			WithDetail("path", path)
	}
}

// parser returns the koanf decoder for f. The TOML one sits on go-toml v1,
// which rejects TOML local dates and times.
func (f Format) parser() koanf.Parser {
	switch f {
	case FormatYAML:
		return yaml.Parser()
	case FormatJSON:
		return json.Parser()
	default:
		return toml.Parser()
	}
}
