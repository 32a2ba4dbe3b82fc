package document

import (
	"math"
	"reflect"
	"strconv"
	"time"
)

// Field names as they appear in the config file. Errors name these.
const (
	FieldContent = "content"
	FieldTheme   = "theme.extend"
	FieldPlugins = "plugins"
)

// Document is the statically shaped configuration record
type Document struct {
	contentPaths    []string
	themeExtensions map[string]interface{}
	plugins         []string
}

// New validates its inputs and builds a Document from copies of them.
// themeExtensions and plugins may be nil; they are stored as empty.
func New(contentPaths []string, themeExtensions map[string]interface{}, plugins []string) (*Document, error) {
	if err := Validate(contentPaths, themeExtensions, plugins); err != nil {
		return nil, err
	}

	return &Document{
		contentPaths:    copyStrings(contentPaths),
		themeExtensions: copyMap(themeExtensions),
		plugins:         copyStrings(plugins),
	}, nil
}

// MustNew is New for literals known to be valid. It panics otherwise.
func MustNew(contentPaths []string, themeExtensions map[string]interface{}, plugins []string) *Document {
	doc, err := New(contentPaths, themeExtensions, plugins)
	if err != nil {
		panic(err)
	}
	return doc
}

// ContentPaths returns the glob patterns to scan, in file order
func (d *Document) ContentPaths() []string {
	return copyStrings(d.contentPaths)
}

// ThemeExtensions returns the theme token overrides, keyed by category
func (d *Document) ThemeExtensions() map[string]interface{} {
	return copyMap(d.themeExtensions)
}

// Plugins returns the plugin identifiers to activate, in file order
func (d *Document) Plugins() []string {
	return copyStrings(d.plugins)
}

// HasThemeExtensions reports whether any theme category is extended
func (d *Document) HasThemeExtensions() bool {
	return len(d.themeExtensions) > 0
}

// Equal compares two documents field for field. Sequence order matters.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return reflect.DeepEqual(d.contentPaths, other.contentPaths) &&
		reflect.DeepEqual(d.themeExtensions, other.themeExtensions) &&
		reflect.DeepEqual(d.plugins, other.plugins)
}

// DuplicatePlugins lists identifiers registered more than once, in the
// order their second occurrence appears.
func (d *Document) DuplicatePlugins() []string {
	seen := make(map[string]bool, len(d.plugins))
	var dups []string
	for _, p := range d.plugins {
		if seen[p] {
			dups = append(dups, p)
			continue
		}
		seen[p] = true
	}
	return dups
}

// Default is the reference document written by gen-config: scan the
// views and layouts templates, extend nothing, enable typography.
func Default() *Document {
	return MustNew(
		[]string{"./views/**/*.html", "./layouts/**/*.html"},
		nil,
		[]string{"@tailwindcss/typography"},
	)
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyMap(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = copyValue(v)
	}
	return out
}

// copyValue deep-copies a theme value and normalizes it, so that the same
// value decoded from TOML, YAML or JSON compares equal and nothing the
// caller holds is shared: maps become map[string]interface{}, lists become
// []interface{} and whole numbers become int64. Values are assumed to have
// passed validateThemeValue.
func copyValue(value interface{}) interface{} {
	if value == nil {
		return nil
	}
	if t, ok := value.(time.Time); ok {
		return t
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		out := make(map[string]interface{}, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key())] = copyValue(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]interface{}, v.Len())
		for i := range out {
			out[i] = copyValue(v.Index(i).Interface())
		}
		return out
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return normalizeFloat(v.Float())
	default:
		return value
	}
}

// mapKey renders a theme map key. Only string and integer keys pass validation.
func mapKey(k reflect.Value) string {
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10)
	default:
		return k.String()
	}
}

func normalizeFloat(f float64) interface{} {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}
