package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode"

	"github.com/arthur-debert/twcfg/pkg/document"
	"github.com/arthur-debert/twcfg/pkg/errors"
)

// Flavor is the JavaScript module system of the generated file
type Flavor string

const (
	// FlavorCJS uses module.exports and require()
	FlavorCJS Flavor = "cjs"
	// FlavorESM uses export default and import
	FlavorESM Flavor = "esm"
)

// DefaultFileName is what the build tool looks for
const DefaultFileName = "tailwind.config.js"

// ParseFlavor parses a flavor name
func ParseFlavor(s string) (Flavor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cjs", "commonjs", "":
		return FlavorCJS, nil
	case "esm", "module":
		return FlavorESM, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown flavor: %s (want cjs or esm)", s)
	}
}

type pluginRef struct {
	ID    string
	Ident string
}

type view struct {
	Content []string
	Theme   string
	Plugins []pluginRef
}

var funcs = template.FuncMap{
	"js": jsString,
}

var cjsTemplate = template.Must(template.New("cjs").Funcs(funcs).Parse(`/** @type {import('tailwindcss').Config} */
module.exports = {
  content: [
{{- range .Content}}
    {{js .}},
{{- end}}
  ],
  theme: {
    extend: {{.Theme}},
  },
  plugins: [
{{- range .Plugins}}
    require({{js .ID}}),
{{- end}}
  ],
}
`))

var esmTemplate = template.Must(template.New("esm").Funcs(funcs).Parse(`{{range .Plugins -}}
import {{.Ident}} from {{js .ID}}
{{end}}{{if .Plugins}}
{{end}}/** @type {import('tailwindcss').Config} */
export default {
  content: [
{{- range .Content}}
    {{js .}},
{{- end}}
  ],
  theme: {
    extend: {{.Theme}},
  },
  plugins: [
{{- range .Plugins}}
    {{.Ident}},
{{- end}}
  ],
}
`))

// Render writes doc to w as a config module of the given flavor. Plugin
// identifiers become module references; nothing is resolved or executed.
func Render(w io.Writer, doc *document.Document, flavor Flavor) error {
	v, err := buildView(doc)
	if err != nil {
		return err
	}

	tmpl := cjsTemplate
	switch flavor {
	case FlavorCJS:
	case FlavorESM:
		tmpl = esmTemplate
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown flavor: %s", flavor)
	}

	if err := tmpl.Execute(w, v); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to render config module")
	}
	return nil
}

func buildView(doc *document.Document) (*view, error) {
	theme := "{}"
	if doc.HasThemeExtensions() {
		out, err := json.MarshalIndent(doc.ThemeExtensions(), "    ", "  ")
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "theme extensions are not representable").
				WithField(document.FieldTheme)
		}
		theme = string(out)
	}

	taken := make(map[string]bool)
	var plugins []pluginRef
	for _, id := range doc.Plugins() {
		base := Identifier(id)
		ident := base
		for n := 2; taken[ident]; n++ {
			ident = fmt.Sprintf("%s%d", base, n)
		}
		taken[ident] = true
		plugins = append(plugins, pluginRef{ID: id, Ident: ident})
	}

	return &view{
		Content: doc.ContentPaths(),
		Theme:   theme,
		Plugins: plugins,
	}, nil
}

// Identifier derives a JavaScript binding name from a plugin identifier:
// "@tailwindcss/container-queries" becomes "containerQueries".
func Identifier(id string) string {
	name := id
	if i := strings.LastIndex(name, "/"); i >= 0 && i < len(name)-1 {
		name = name[i+1:]
	}
	name = strings.TrimPrefix(name, "@")
	name = strings.TrimPrefix(name, "tailwindcss-")

	var b strings.Builder
	upper := false
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = b.Len() > 0
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}

	ident := b.String()
	if ident == "" {
		return "plugin"
	}
	if unicode.IsDigit([]rune(ident)[0]) {
		return "plugin" + ident
	}
	if reserved[ident] {
		return ident + "Plugin"
	}
	return ident
}

// reserved holds the JavaScript reserved words and literals, plus the
// module names the generated file itself binds.
var reserved = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "implements": true, "import": true,
	"in": true, "instanceof": true, "interface": true, "let": true,
	"new": true, "null": true, "package": true, "private": true,
	"protected": true, "public": true, "return": true, "static": true,
	"super": true, "switch": true, "this": true, "throw": true, "true": true,
	"try": true, "typeof": true, "var": true, "void": true, "while": true,
	"with": true, "yield": true,
	"arguments": true, "eval": true, "undefined": true, "NaN": true,
	"Infinity": true, "module": true, "require": true, "exports": true,
}

// jsString quotes s as a JavaScript string literal
func jsString(s string) string {
	out, _ := json.Marshal(s)
	return string(out)
}
