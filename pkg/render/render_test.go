package render

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/twcfg/pkg/document"
	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_CJS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, document.Default(), FlavorCJS))

	want := `/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [
    "./views/**/*.html",
    "./layouts/**/*.html",
  ],
  theme: {
    extend: {},
  },
  plugins: [
    require("@tailwindcss/typography"),
  ],
}
`
	assert.Equal(t, want, buf.String())
}

func TestRender_ESM(t *testing.T) {
	doc := document.MustNew(
		[]string{"./views/**/*.html"},
		map[string]interface{}{
			"colors": map[string]interface{}{"brand": "#0f172a"},
		},
		[]string{"@tailwindcss/typography", "@tailwindcss/container-queries"},
	)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc, FlavorESM))

	want := `import typography from "@tailwindcss/typography"
import containerQueries from "@tailwindcss/container-queries"

/** @type {import('tailwindcss').Config} */
export default {
  content: [
    "./views/**/*.html",
  ],
  theme: {
    extend: {
      "colors": {
        "brand": "#0f172a"
      }
    },
  },
  plugins: [
    typography,
    containerQueries,
  ],
}
`
	assert.Equal(t, want, buf.String())
}

func TestRender_NoPlugins(t *testing.T) {
	doc := document.MustNew([]string{"src/**/*.html"}, nil, nil)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc, FlavorESM))
	assert.NotContains(t, buf.String(), "import ")
	assert.Contains(t, buf.String(), "plugins: [\n  ],")
}

func TestRender_UnknownFlavor(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, document.Default(), Flavor("amd"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Empty(t, buf.String())
}

func TestIdentifier(t *testing.T) {
	tests := map[string]string{
		"@tailwindcss/typography":        "typography",
		"@tailwindcss/container-queries": "containerQueries",
		"tailwindcss-animate":            "animate",
		"daisyui":                        "daisyui",
		"./plugins/brand.js":             "brandJs",
		"@acme/3d":                       "plugin3d",
		"@acme/default":                  "defaultPlugin",
		"@acme/switch":                   "switchPlugin",
		"null":                           "nullPlugin",
		"tailwindcss-true":               "truePlugin",
		"@acme/while":                    "whilePlugin",
	}
	for in, want := range tests {
		assert.Equal(t, want, Identifier(in), in)
	}
}

func TestRender_DuplicateIdentifiers(t *testing.T) {
	doc := document.MustNew([]string{"src/**"}, nil, []string{"@a/forms", "@b/forms"})

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, doc, FlavorESM))
	assert.Contains(t, buf.String(), "import forms from \"@a/forms\"\n")
	assert.Contains(t, buf.String(), "import forms2 from \"@b/forms\"\n")
}

func TestRender_IdentifiersStayUnique(t *testing.T) {
	doc := document.MustNew([]string{"src/**"}, nil, []string{"a/foo", "b/foo", "foo2", "c/foo"})

	v, err := buildView(doc)
	require.NoError(t, err)

	var idents []string
	for _, p := range v.Plugins {
		idents = append(idents, p.Ident)
	}
	assert.Equal(t, []string{"foo", "foo2", "foo22", "foo3"}, idents)
}

func TestParseFlavor(t *testing.T) {
	f, err := ParseFlavor("")
	require.NoError(t, err)
	assert.Equal(t, FlavorCJS, f)

	f, err = ParseFlavor("ESM")
	require.NoError(t, err)
	assert.Equal(t, FlavorESM, f)

	_, err = ParseFlavor("amd")
	assert.Error(t, err)
}
