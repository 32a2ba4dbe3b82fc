package config

import (
	"testing"

	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := LoadSettings(nil)
		require.NoError(t, err)
		assert.Equal(t, &Settings{Format: "toml"}, s)
		assert.Equal(t, FormatTOML, s.OutputFormat())
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("TWCFG_ROOT", "/site")
		t.Setenv("TWCFG_CONFIG", "/site/tw.json")
		t.Setenv("TWCFG_FORMAT", "yaml")
		t.Setenv("TWCFG_NO_COLOR", "true")
		t.Setenv("TWCFG_STATE_DIR", "/ignored")

		s, err := LoadSettings(nil)
		require.NoError(t, err)
		assert.Equal(t, "/site", s.Root)
		assert.Equal(t, "/site/tw.json", s.Config)
		assert.Equal(t, FormatYAML, s.OutputFormat())
		assert.True(t, s.NoColor)
	})

	t.Run("overrides beat environment", func(t *testing.T) {
		t.Setenv("TWCFG_FORMAT", "yaml")
		t.Setenv("TWCFG_ROOT", "/site")

		s, err := LoadSettings(map[string]interface{}{
			"format": "json",
		})
		require.NoError(t, err)
		assert.Equal(t, FormatJSON, s.OutputFormat())
		assert.Equal(t, "/site", s.Root)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Setenv("TWCFG_FORMAT", "xml")

		_, err := LoadSettings(nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})
}
