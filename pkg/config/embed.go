package config

import (
	_ "embed"
)

//go:embed embedded/starter.toml
var starterConfig []byte

//go:embed embedded/examples.toml
var exampleConfig []byte

// GetStarterContent returns the embedded starter document
func GetStarterContent() string {
	return string(starterConfig)
}
