package config

import (
	stderrors "errors"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/twcfg/pkg/document"
	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/arthur-debert/twcfg/pkg/filesystem"
	"github.com/arthur-debert/twcfg/pkg/paths"
	"github.com/arthur-debert/twcfg/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const referenceTOML = `content = ["./views/**/*.html", "./layouts/**/*.html"]
plugins = ["@tailwindcss/typography"]

[theme.extend]
`

func memFS(t *testing.T, files map[string]string) types.FS {
	t.Helper()
	fsys := filesystem.NewMemory()
	for name, body := range files {
		require.NoError(t, fsys.MkdirAll(filepath.Dir(name), 0755))
		require.NoError(t, fsys.WriteFile(name, []byte(body), 0644))
	}
	return fsys
}

func TestLoad_ReferenceLiteral(t *testing.T) {
	fsys := memFS(t, map[string]string{"/site/tailwind.toml": referenceTOML})

	doc, err := Load(fsys, "/site/tailwind.toml")
	require.NoError(t, err)

	assert.Equal(t, []string{"./views/**/*.html", "./layouts/**/*.html"}, doc.ContentPaths())
	assert.Equal(t, map[string]interface{}{}, doc.ThemeExtensions())
	assert.Equal(t, []string{"@tailwindcss/typography"}, doc.Plugins())
	assert.True(t, doc.Equal(document.Default()))
}

func TestLoad_NothingInjected(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/site/tailwind.toml": `content = ["src/**/*.html"]`,
	})

	doc, err := Load(fsys, "/site/tailwind.toml")
	require.NoError(t, err)

	assert.Equal(t, []string{"src/**/*.html"}, doc.ContentPaths())
	assert.Empty(t, doc.Plugins())
	assert.Empty(t, doc.ThemeExtensions())
}

func TestLoad_ThemeKeysWithDots(t *testing.T) {
	fsys := memFS(t, map[string]string{
		"/site/tailwind.toml": `content = ["src/**/*.html"]

[theme.extend.spacing]
"0.5" = "2px"
"1.5" = "6px"
`,
	})

	doc, err := Load(fsys, "/site/tailwind.toml")
	require.NoError(t, err)

	spacing, ok := doc.ThemeExtensions()["spacing"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2px", spacing["0.5"])
	assert.Equal(t, "6px", spacing["1.5"])
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		path  string
		body  string
		code  errors.ErrorCode
		field string
	}{
		{
			name: "empty content",
			path: "/site/tailwind.toml",
			body: "content = []\nplugins = [\"@tailwindcss/typography\"]\n",
			code: errors.ErrEmptyContentPaths, field: "content",
		},
		{
			name: "missing content",
			path: "/site/tailwind.toml",
			body: "plugins = [\"@tailwindcss/typography\"]\n",
			code: errors.ErrEmptyContentPaths, field: "content",
		},
		{
			name: "only exclusions",
			path: "/site/tailwind.toml",
			body: "content = [\"!vendor/**\"]\n",
			code: errors.ErrEmptyContentPaths, field: "content",
		},
		{
			// Local dates have no place in a theme and the TOML parser
			// does not read them.
			name: "toml local date",
			path: "/site/tailwind.toml",
			body: "content = [\"src/**/*.html\"]\n\n[theme.extend]\nlaunch = 2024-01-02\n",
			code: errors.ErrMalformedConfig,
		},
		{
			name: "content not a list",
			path: "/site/tailwind.toml",
			body: "content = \"./views/**/*.html\"\n",
			code: errors.ErrMalformedConfig, field: "content",
		},
		{
			name: "content item not a string",
			path: "/site/tailwind.toml",
			body: "content = [\"./views/**/*.html\", 3]\n",
			code: errors.ErrMalformedConfig, field: "content[1]",
		},
		{
			name: "invalid glob",
			path: "/site/tailwind.toml",
			body: "content = [\"./views/**/*.html\", \"src/[\"]\n",
			code: errors.ErrMalformedConfig, field: "content[1]",
		},
		{
			name: "plugin with whitespace",
			path: "/site/tailwind.toml",
			body: "content = [\"src/**\"]\nplugins = [\"@tailwindcss/forms\", \"not a plugin\"]\n",
			code: errors.ErrMalformedConfig, field: "plugins[1]",
		},
		{
			name: "unknown top-level key",
			path: "/site/tailwind.toml",
			body: "content = [\"src/**\"]\ndarkMode = \"class\"\n",
			code: errors.ErrMalformedConfig, field: "darkMode",
		},
		{
			name: "theme not a table",
			path: "/site/tailwind.toml",
			body: "content = [\"src/**\"]\ntheme = 1\n",
			code: errors.ErrMalformedConfig, field: "theme",
		},
		{
			name: "theme override instead of extend",
			path: "/site/tailwind.toml",
			body: "content = [\"src/**\"]\n[theme.colors]\nbrand = \"#000\"\n",
			code: errors.ErrMalformedConfig, field: "theme.colors",
		},
		{
			name: "extend not a table",
			path: "/site/tailwind.yaml",
			body: "content: [\"src/**\"]\ntheme:\n  extend: [1, 2]\n",
			code: errors.ErrMalformedConfig, field: "theme.extend",
		},
		{
			name: "syntax error",
			path: "/site/tailwind.toml",
			body: "content = [\"src/**\"\n",
			code: errors.ErrMalformedConfig,
		},
		{
			name: "json syntax error",
			path: "/site/tailwind.json",
			body: "{\"content\": [\"src/**\"],}",
			code: errors.ErrMalformedConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := memFS(t, map[string]string{tt.path: tt.body})

			doc, err := Load(fsys, tt.path)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.Equal(t, tt.code, errors.GetErrorCode(err), err.Error())
			if tt.field != "" {
				assert.Equal(t, tt.field, errors.Field(err))
			}
			assert.Equal(t, tt.path, errors.GetErrorDetails(err)["path"])
		})
	}
}

func TestLoad_NotFound(t *testing.T) {
	fsys := memFS(t, map[string]string{"/site/views/index.html": "<p/>"})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(fsys, "/site/tailwind.toml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("missing file with unknown extension", func(t *testing.T) {
		_, err := Load(fsys, "/site/tailwind.config.js")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound), err.Error())
		assert.Equal(t, "/site/tailwind.config.js", errors.GetErrorDetails(err)["path"])
	})

	t.Run("directory", func(t *testing.T) {
		require.NoError(t, fsys.MkdirAll("/site/tailwind.toml.d/x.toml", 0755))
		_, err := Load(fsys, "/site/tailwind.toml.d/x.toml")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestLoad_ErrorDetails(t *testing.T) {
	fsys := memFS(t, map[string]string{"/site/tailwind.yaml": "content: []\n"})

	_, err := Load(fsys, "/site/tailwind.yaml")
	require.Error(t, err)
	details := errors.GetErrorDetails(err)
	assert.Equal(t, "/site/tailwind.yaml", details["path"])
	assert.Equal(t, "yaml", details["format"])
	assert.Equal(t, "content", details[errors.DetailField])
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	fsys := memFS(t, map[string]string{"/site/tailwind.ini": "content=src"})

	_, err := Load(fsys, "/site/tailwind.ini")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedConfig))
	assert.True(t, stderrors.Is(err, errors.New(errors.ErrUnsupportedFormat, "")))
}

func TestLoad_AllEncodings(t *testing.T) {
	files := map[string]string{
		"/a/tailwind.toml": referenceTOML,
		"/b/tailwind.yaml": `content:
  - ./views/**/*.html
  - ./layouts/**/*.html
theme:
  extend: {}
plugins:
  - "@tailwindcss/typography"
`,
		"/c/tailwind.yml": `content: ["./views/**/*.html", "./layouts/**/*.html"]
plugins: ["@tailwindcss/typography"]
`,
		"/d/tailwind.json": `{
  "content": ["./views/**/*.html", "./layouts/**/*.html"],
  "theme": {"extend": {}},
  "plugins": ["@tailwindcss/typography"]
}
`,
	}
	fsys := memFS(t, files)

	for path := range files {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			doc, err := Load(fsys, path)
			require.NoError(t, err)
			assert.True(t, doc.Equal(document.Default()))
		})
	}
}

func TestDiscover(t *testing.T) {
	t.Run("lookup order", func(t *testing.T) {
		fsys := memFS(t, map[string]string{
			"/site/tailwind.json":    `{"content": ["src/**"]}`,
			"/site/.tailwind.toml":   `content = ["src/**"]`,
			"/site/tailwind.yaml":    `content: ["src/**"]`,
			"/site/views/index.html": "<p/>",
		})

		found, err := Discover(fsys, "/site")
		require.NoError(t, err)
		assert.Equal(t, "/site/.tailwind.toml", found)
	})

	t.Run("none", func(t *testing.T) {
		fsys := memFS(t, map[string]string{"/site/views/index.html": "<p/>"})

		_, err := Discover(fsys, "/site")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		candidates, ok := errors.GetErrorDetails(err)["candidates"].([]string)
		require.True(t, ok)
		assert.Len(t, candidates, len(paths.ConfigFileNames))
	})
}

func TestResolve(t *testing.T) {
	t.Setenv(paths.EnvConfigDir, "/home/me/.config/twcfg")

	p, err := paths.New("/site")
	require.NoError(t, err)

	t.Run("explicit wins", func(t *testing.T) {
		fsys := memFS(t, map[string]string{
			"/site/tailwind.toml": referenceTOML,
			"/elsewhere/tw.json":  `{"content": ["src/**"]}`,
		})
		found, err := Resolve(fsys, p, "/elsewhere/tw.json")
		require.NoError(t, err)
		assert.Equal(t, "/elsewhere/tw.json", found)
	})

	t.Run("explicit missing", func(t *testing.T) {
		fsys := memFS(t, map[string]string{"/site/tailwind.toml": referenceTOML})
		_, err := Resolve(fsys, p, "/elsewhere/tw.json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("project root", func(t *testing.T) {
		fsys := memFS(t, map[string]string{
			"/site/tailwind.yml":                   `content: ["src/**"]`,
			"/home/me/.config/twcfg/tailwind.toml": referenceTOML,
		})
		found, err := Resolve(fsys, p, "")
		require.NoError(t, err)
		assert.Equal(t, "/site/tailwind.yml", found)
	})

	t.Run("user fallback", func(t *testing.T) {
		fsys := memFS(t, map[string]string{
			"/home/me/.config/twcfg/tailwind.toml": referenceTOML,
		})
		path, doc, err := LoadResolved(fsys, p, "")
		require.NoError(t, err)
		assert.Equal(t, "/home/me/.config/twcfg/tailwind.toml", path)
		assert.True(t, doc.Equal(document.Default()))
	})

	t.Run("nothing anywhere", func(t *testing.T) {
		fsys := memFS(t, map[string]string{"/site/views/index.html": "<p/>"})
		_, _, err := LoadResolved(fsys, p, "")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
		candidates := errors.GetErrorDetails(err)["candidates"].([]string)
		assert.Equal(t, "/home/me/.config/twcfg/tailwind.toml", candidates[len(candidates)-1])
	})
}
