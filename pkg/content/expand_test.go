package content

import (
	"context"
	stderrors "errors"
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/twcfg/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func siteFS() fstest.MapFS {
	return fstest.MapFS{
		"views/index.html":         {Data: []byte("<h1 class=\"text-xl\">")},
		"views/about.html":         {Data: []byte("<p>")},
		"views/vendor/widget.html": {Data: []byte("<div>")},
		"views/partials/nav.html":  {Data: []byte("<nav>")},
		"layouts/base.html":        {Data: []byte("<html>")},
		"layouts/base.tmpl":        {Data: []byte("{{.}}")},
		"assets/app.css":           {Data: []byte("@tailwind base;")},
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in      string
		glob    string
		exclude bool
	}{
		{"./views/**/*.html", "views/**/*.html", false},
		{"views/*.html", "views/*.html", false},
		{"!./views/vendor/**", "views/vendor/**", true},
		{"././a/*", "a/*", false},
	}
	for _, tt := range tests {
		glob, exclude := Normalize(tt.in)
		assert.Equal(t, tt.glob, glob, tt.in)
		assert.Equal(t, tt.exclude, exclude, tt.in)
	}
}

func TestExpand(t *testing.T) {
	report, err := Expand(context.Background(), siteFS(), []string{
		"./views/**/*.html",
		"./layouts/**/*.html",
		"./components/**/*.html",
		"!./views/vendor/**",
	})
	require.NoError(t, err)

	require.Len(t, report.Patterns, 4)
	assert.Equal(t, "./views/**/*.html", report.Patterns[0].Pattern)
	assert.Equal(t, []string{
		"views/about.html",
		"views/index.html",
		"views/partials/nav.html",
		"views/vendor/widget.html",
	}, report.Patterns[0].Matches)
	assert.Equal(t, []string{"layouts/base.html"}, report.Patterns[1].Matches)
	assert.Empty(t, report.Patterns[2].Matches)
	assert.True(t, report.Patterns[3].Exclude)

	assert.Equal(t, []string{
		"layouts/base.html",
		"views/about.html",
		"views/index.html",
		"views/partials/nav.html",
	}, report.Files)
	assert.Equal(t, []string{"./components/**/*.html"}, report.Unmatched())
}

func TestExpand_BraceAlternatives(t *testing.T) {
	report, err := Expand(context.Background(), siteFS(), []string{"layouts/*.{html,tmpl}"})
	require.NoError(t, err)
	assert.Equal(t, []string{"layouts/base.html", "layouts/base.tmpl"}, report.Files)
}

func TestExpand_OutsideBase(t *testing.T) {
	report, err := Expand(context.Background(), siteFS(), []string{"../shared/**/*.html", "views/*.html"})
	require.NoError(t, err)

	assert.Error(t, report.Patterns[0].Err)
	assert.Equal(t, []string{"views/about.html", "views/index.html"}, report.Files)
	// A pattern that could not be evaluated is reported through Err, not
	// as unmatched.
	assert.Empty(t, report.Unmatched())
}

func TestExpand_AferoTree(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, fsys.MkdirAll("/site/views", 0755))
	require.NoError(t, fsys.WriteFile("/site/views/index.html", []byte("<p>"), 0644))
	require.NoError(t, fsys.WriteFile("/site/tailwind.toml", []byte("content = []"), 0644))

	report, err := Expand(context.Background(), fsys.DirFS("/site"), []string{"./views/**/*.html"})
	require.NoError(t, err)
	assert.Equal(t, []string{"views/index.html"}, report.Files)
}

func TestExpand_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Expand(ctx, siteFS(), []string{"views/**"})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled))
}
