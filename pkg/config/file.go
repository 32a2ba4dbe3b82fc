package config

import (
	"fmt"

	"github.com/arthur-debert/twcfg/pkg/document"
	"github.com/arthur-debert/twcfg/pkg/errors"
)

// File is the on-disk shape of the document. It mirrors the consuming
// tool's own config object: content, theme.extend and plugins.
type File struct {
	Content []string `koanf:"content" toml:"content" yaml:"content" json:"content" jsonschema:"required,minItems=1,description=Glob patterns of the files scanned for class names. A leading ! excludes matches."`
	Theme   Theme    `koanf:"theme" toml:"theme" yaml:"theme" json:"theme" jsonschema:"description=Theme customisation."`
	Plugins []string `koanf:"plugins" toml:"plugins" yaml:"plugins" json:"plugins" jsonschema:"description=Plugin identifiers to activate in order."`
}

// Theme holds the theme section. Only extensions are supported: the
// built-in token set is augmented, never replaced.
type Theme struct {
	Extend map[string]interface{} `koanf:"extend" toml:"extend" yaml:"extend" json:"extend" jsonschema:"description=Design-token categories to add to the defaults."`
}

// Document validates the decoded file and builds the immutable document
func (f File) Document() (*document.Document, error) {
	return document.New(f.Content, f.Theme.Extend, f.Plugins)
}

// FileFromDocument is the inverse of File.Document
func FileFromDocument(doc *document.Document) File {
	return File{
		Content: doc.ContentPaths(),
		Theme:   Theme{Extend: doc.ThemeExtensions()},
		Plugins: doc.Plugins(),
	}
}

var (
	topLevelKeys = map[string]bool{"content": true, "theme": true, "plugins": true}
	themeKeys    = map[string]bool{"extend": true}
)

// checkShape walks the parsed tree before decoding so that every shape
// violation names the exact field it is about.
func checkShape(raw map[string]interface{}) error {
	for key := range raw {
		if !topLevelKeys[key] {
			return malformed(key, "unknown key %q (allowed: content, theme, plugins)", key)
		}
	}

	if err := checkStringList(raw, document.FieldContent); err != nil {
		return err
	}
	if err := checkStringList(raw, document.FieldPlugins); err != nil {
		return err
	}

	theme, ok := raw["theme"]
	if !ok || theme == nil {
		return nil
	}
	themeMap, ok := theme.(map[string]interface{})
	if !ok {
		return malformed("theme", "expected a table, got %s", describe(theme))
	}
	for key := range themeMap {
		if !themeKeys[key] {
			return malformed("theme."+key, "unknown key %q under theme (only extend is supported)", key)
		}
	}
	if extend, ok := themeMap["extend"]; ok && extend != nil {
		if _, ok := extend.(map[string]interface{}); !ok {
			return malformed(document.FieldTheme, "expected a table, got %s", describe(extend))
		}
	}
	return nil
}

func checkStringList(raw map[string]interface{}, key string) error {
	value, ok := raw[key]
	if !ok || value == nil {
		return nil
	}
	if _, ok := value.([]string); ok {
		return nil
	}
	items, ok := value.([]interface{})
	if !ok {
		return malformed(key, "expected a list of strings, got %s", describe(value))
	}
	for i, item := range items {
		if _, ok := item.(string); !ok {
			field := fmt.Sprintf("%s[%d]", key, i)
			return malformed(field, "expected a string, got %s", describe(item))
		}
	}
	return nil
}

func malformed(field, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return errors.Newf(errors.ErrMalformedConfig, "%s: %s", field, msg).WithField(field)
}

func describe(v interface{}) string {
	switch v.(type) {
	case map[string]interface{}:
		return "a table"
	case []interface{}:
		return "a list"
	case string:
		return "a string"
	case bool:
		return "a boolean"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%T", v)
	}
}
