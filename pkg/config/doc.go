// Package config loads, serializes and locates the configuration document.
//
// Documents are read from TOML, YAML or JSON files through koanf, checked
// for shape, and handed to pkg/document for validation. Loading is a single
// synchronous read with no side effects. Failures carry one of three codes:
// CONFIG_MALFORMED, EMPTY_CONTENT_PATHS or NOT_FOUND, plus the failing field
// where one is known.
//
// Settings for the twcfg command itself (project root, explicit config
// path, output format) are layered from defaults and TWCFG_ environment
// variables by LoadSettings.
package config
