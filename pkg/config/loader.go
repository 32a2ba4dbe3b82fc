package config

import (
	stderrors "errors"
	"io/fs"

	"github.com/arthur-debert/twcfg/pkg/document"
	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/arthur-debert/twcfg/pkg/logging"
	"github.com/arthur-debert/twcfg/pkg/paths"
	"github.com/arthur-debert/twcfg/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"
)

// Load reads the document at path. The format comes from the extension.
func Load(fsys types.FS, path string) (*document.Document, error) {
	logger := logging.GetLogger("config")
	done := logging.LogOperationStart(logger, "load")
	defer done()

	info, err := fsys.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrNotFound, "config file not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", path).
			WithDetail("path", path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrNotFound, "%s is a directory not a file", path).
			WithDetail("path", path)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrMalformedConfig, "cannot load %s", path).
			WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}

	doc, err := LoadBytes(data, format)
	if err != nil {
		var twErr *errors.TwcfgError
		if stderrors.As(err, &twErr) {
			twErr.WithDetails(map[string]interface{}{
				"path":   path,
				"format": format.String(),
			})
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("format", format.String()).
		Int("content", len(doc.ContentPaths())).
		Int("plugins", len(doc.Plugins())).
		Bool("themeExtended", doc.HasThemeExtensions()).
		Msg("Config document loaded")

	if dups := doc.DuplicatePlugins(); len(dups) > 0 {
		logger.Warn().Str("path", path).Strs("plugins", dups).Msg("Plugins registered more than once")
	}

	return doc, nil
}

// docDelim splits koanf key paths. Theme keys such as spacing "0.5"
// contain dots, so the document tree must never be split on them.
const docDelim = "\x00"

// LoadBytes parses, shape-checks and validates a document held in memory
func LoadBytes(data []byte, format Format) (*document.Document, error) {
	k := koanf.New(docDelim)
	if err := k.Load(&rawBytesProvider{bytes: data}, format.parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrMalformedConfig, "cannot parse %s document", format).
			WithDetail("format", format.String())
	}

	if err := checkShape(k.Raw()); err != nil {
		return nil, err
	}

	var file File
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &file,
			ErrorUnused:      true,
			WeaklyTypedInput: false,
		},
	}
	if err := k.UnmarshalWithConf("", &file, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedConfig, "document does not match the expected shape")
	}

	return file.Document()
}

// Discover returns the first conventional document found in root.
func Discover(fsys types.FS, root string) (string, error) {
	p, err := paths.New(root)
	if err != nil {
		return "", err
	}
	candidates := p.Candidates()
	if found, ok := firstFile(fsys, candidates); ok {
		return found, nil
	}
	return "", errors.Newf(errors.ErrNotFound, "no config file in %s", p.ProjectRoot()).
		WithDetail("candidates", candidates)
}

// Resolve decides which file to load: an explicit path if given, else the
// conventional names in the project root, else the user-level fallback.
func Resolve(fsys types.FS, p paths.Paths, explicit string) (string, error) {
	logger := logging.GetLogger("config")

	if explicit != "" {
		explicit = paths.ExpandHome(explicit)
		if _, err := fsys.Stat(explicit); err != nil {
			return "", errors.Newf(errors.ErrNotFound, "config file not found: %s", explicit).
				WithDetail("path", explicit)
		}
		logger.Debug().Str("path", explicit).Msg("Using explicit config path")
		return explicit, nil
	}

	candidates := append(p.Candidates(), p.UserConfigPath())
	if found, ok := firstFile(fsys, candidates); ok {
		logger.Debug().Str("path", found).Msg("Resolved config path")
		return found, nil
	}

	return "", errors.Newf(errors.ErrNotFound, "no config file in %s (run `twcfg gen-config -w` to create one)", p.ProjectRoot()).
		WithDetail("candidates", candidates)
}

func firstFile(fsys types.FS, candidates []string) (string, bool) {
	for _, candidate := range candidates {
		info, err := fsys.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}

// LoadResolved is Resolve followed by Load
func LoadResolved(fsys types.FS, p paths.Paths, explicit string) (string, *document.Document, error) {
	path, err := Resolve(fsys, p, explicit)
	if err != nil {
		return "", nil, err
	}
	doc, err := Load(fsys, path)
	if err != nil {
		return path, nil, err
	}
	return path, doc, nil
}
