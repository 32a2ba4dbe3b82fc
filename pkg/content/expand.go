package content

import (
	"context"
	"io/fs"
	"sort"
	"strings"

	"github.com/arthur-debert/twcfg/pkg/document"
	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/arthur-debert/twcfg/pkg/logging"
	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// maxParallel bounds concurrent directory walks
const maxParallel = 8

// PatternResult is what a single content path matched
type PatternResult struct {
	// Pattern is the content path as written in the document
	Pattern string
	// Exclude is true for patterns with a leading "!"
	Exclude bool
	// Matches are slash-separated paths relative to the base, sorted
	Matches []string
	// Err is set when the pattern cannot be evaluated against the base,
	// e.g. it climbs out of it with "..".
	Err error
}

// Report is the outcome of expanding every content path of a document
type Report struct {
	// Patterns keeps the document order
	Patterns []PatternResult
	// Files is the union of include matches minus exclude matches, sorted
	Files []string
}

// Unmatched returns the include patterns that matched no file
func (r *Report) Unmatched() []string {
	var out []string
	for _, p := range r.Patterns {
		if !p.Exclude && p.Err == nil && len(p.Matches) == 0 {
			out = append(out, p.Pattern)
		}
	}
	return out
}

// Normalize strips the exclusion marker and a leading "./", returning the
// pattern in the form fs.FS globbing expects.
func Normalize(pattern string) (glob string, exclude bool) {
	glob = pattern
	if strings.HasPrefix(glob, document.ExcludePrefix) {
		exclude = true
		glob = strings.TrimPrefix(glob, document.ExcludePrefix)
	}
	for strings.HasPrefix(glob, "./") {
		glob = strings.TrimPrefix(glob, "./")
	}
	if glob == "." {
		glob = ""
	}
	return glob, exclude
}

// Expand matches every pattern against fsys. Patterns are walked
// concurrently; the report keeps their order.
func Expand(ctx context.Context, fsys fs.FS, patterns []string) (*Report, error) {
	logger := logging.GetLogger("content")
	done := logging.LogOperationStart(logger, "expand")
	defer done()

	results := make([]PatternResult, len(patterns))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, pattern := range patterns {
		i, pattern := i, pattern
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = expandOne(fsys, pattern)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "content expansion interrupted")
	}

	report := &Report{Patterns: results, Files: combine(results)}

	logger.Debug().
		Int("patterns", len(patterns)).
		Int("files", len(report.Files)).
		Strs("unmatched", report.Unmatched()).
		Msg("Content paths expanded")

	return report, nil
}

func expandOne(fsys fs.FS, pattern string) PatternResult {
	glob, exclude := Normalize(pattern)
	result := PatternResult{Pattern: pattern, Exclude: exclude}

	if glob == ".." || strings.HasPrefix(glob, "../") || strings.HasPrefix(glob, "/") {
		result.Err = errors.Newf(errors.ErrInvalidInput, "%s reaches outside the config directory", pattern).
			WithDetail("pattern", pattern)
		return result
	}

	matches, err := doublestar.Glob(fsys, glob, doublestar.WithFilesOnly())
	if err != nil {
		result.Err = errors.Wrapf(err, errors.ErrInvalidInput, "cannot expand %s", pattern).
			WithDetail("pattern", pattern)
		return result
	}
	sort.Strings(matches)
	result.Matches = matches
	return result
}

func combine(results []PatternResult) []string {
	included := make(map[string]bool)
	for _, r := range results {
		if r.Exclude {
			continue
		}
		for _, m := range r.Matches {
			included[m] = true
		}
	}
	for _, r := range results {
		if !r.Exclude {
			continue
		}
		for _, m := range r.Matches {
			delete(included, m)
		}
	}

	files := make([]string, 0, len(included))
	for f := range included {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}
