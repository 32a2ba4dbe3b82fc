package document

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// ExcludePrefix marks a content path whose matches are removed from the
// scan set instead of added to it.
const ExcludePrefix = "!"

// Validate checks the three fields against the document invariants and
// returns the first violation, naming the offending field.
func Validate(contentPaths []string, themeExtensions map[string]interface{}, plugins []string) error {
	if err := ValidateContentPaths(contentPaths); err != nil {
		return err
	}
	if err := validateTheme(themeExtensions); err != nil {
		return err
	}
	return validatePlugins(plugins)
}

// ValidateContentPaths enforces a non-empty list of well-formed globs.
func ValidateContentPaths(contentPaths []string) error {
	if len(contentPaths) == 0 {
		return errors.New(errors.ErrEmptyContentPaths,
			"content must list at least one glob; an empty scan set detects no classes").
			WithField(FieldContent)
	}

	includes := 0
	for i, pattern := range contentPaths {
		field := fmt.Sprintf("%s[%d]", FieldContent, i)
		glob := strings.TrimSpace(pattern)
		if glob == "" {
			return errors.Newf(errors.ErrMalformedConfig, "%s: glob is blank", field).
				WithField(field)
		}

		if strings.HasPrefix(glob, ExcludePrefix) {
			glob = strings.TrimPrefix(glob, ExcludePrefix)
			if strings.TrimSpace(glob) == "" {
				return errors.Newf(errors.ErrMalformedConfig, "%s: exclusion has no pattern", field).
					WithField(field)
			}
		} else {
			includes++
		}

		if !doublestar.ValidatePattern(glob) {
			return errors.Newf(errors.ErrMalformedConfig, "%s: invalid glob %q", field, pattern).
				WithField(field)
		}
	}

	if includes == 0 {
		return errors.New(errors.ErrEmptyContentPaths,
			"content only lists exclusions; at least one glob must add files").
			WithField(FieldContent)
	}
	return nil
}

func validateTheme(themeExtensions map[string]interface{}) error {
	for key, value := range themeExtensions {
		if strings.TrimSpace(key) == "" {
			return errors.New(errors.ErrMalformedConfig, "theme.extend: category name is blank").
				WithField(FieldTheme)
		}
		if err := validateThemeValue(FieldTheme+"."+key, value); err != nil {
			return err
		}
	}
	return nil
}

// validateThemeValue accepts what a config file can hold: strings, bools,
// numbers, timestamps, and maps or lists of those. Map keys must be strings
// or integers.
func validateThemeValue(field string, value interface{}) error {
	if value == nil {
		return nil
	}
	if _, ok := value.(time.Time); ok {
		return nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if v.Uint() > math.MaxInt64 {
			return errors.Newf(errors.ErrMalformedConfig, "%s: integer %d does not fit in 64 signed bits", field, v.Uint()).
				WithField(field)
		}
		return nil
	case reflect.Map:
		switch v.Type().Key().Kind() {
		case reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		default:
			return errors.Newf(errors.ErrMalformedConfig, "%s: map keys of type %s are not supported", field, v.Type().Key()).
				WithField(field)
		}
		iter := v.MapRange()
		for iter.Next() {
			if err := validateThemeValue(field+"."+mapKey(iter.Key()), iter.Value().Interface()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := validateThemeValue(fmt.Sprintf("%s[%d]", field, i), v.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Newf(errors.ErrMalformedConfig, "%s: unsupported value of type %T", field, value).
			WithField(field)
	}
}

func validatePlugins(plugins []string) error {
	for i, id := range plugins {
		field := fmt.Sprintf("%s[%d]", FieldPlugins, i)
		if id == "" {
			return errors.Newf(errors.ErrMalformedConfig, "%s: plugin identifier is blank", field).
				WithField(field)
		}
		if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
			return errors.Newf(errors.ErrMalformedConfig, "%s: plugin identifier %q contains whitespace", field, id).
				WithField(field)
		}
	}
	return nil
}
