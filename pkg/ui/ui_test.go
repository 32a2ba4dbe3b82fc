package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatAuto, "auto"},
		{FormatTerminal, "term"},
		{FormatText, "text"},
		{Format(999), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.format.String())
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"TERMINAL", FormatTerminal, false},
		{"plain", FormatText, false},
		{"html", FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, FormatText, DetectFormat(nil))
}

func TestTable(t *testing.T) {
	Apply(FormatText)

	out, err := Table([]string{"PATTERN", "MATCHES"}, [][]string{
		{"./views/**/*.html", "12"},
		{"./layouts/**/*.html", "0"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "PATTERN"))
	assert.Contains(t, lines[1], "./views/**/*.html")
	assert.Contains(t, lines[2], "0")
}
