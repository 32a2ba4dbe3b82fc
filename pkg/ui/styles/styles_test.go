package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range defaultNames {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s is missing from styles.yaml", name)
	}

	assert.True(t, GetStyle("Error").GetBold())
	assert.True(t, GetStyle("FilePath").GetUnderline())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#4ade80"}, GetStyle("Success").GetForeground())
}

func TestGetStyle_Unknown(t *testing.T) {
	style := GetStyle("NoSuchStyle")
	assert.False(t, style.GetBold())
}

func TestLoadStylesFromData_Invalid(t *testing.T) {
	defer func() { require.NoError(t, LoadStylesFromData(embeddedStyles)) }()

	err := LoadStylesFromData([]byte("styles: [unterminated"))
	assert.Error(t, err)
}

func TestRender_Plain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)
	assert.Equal(t, "tailwind.toml", Render("Muted", "tailwind.toml"))
}
