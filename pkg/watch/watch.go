package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/arthur-debert/twcfg/pkg/config"
	"github.com/arthur-debert/twcfg/pkg/document"
	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/arthur-debert/twcfg/pkg/logging"
	"github.com/arthur-debert/twcfg/pkg/types"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the file must stay quiet before a reload
const DefaultDebounce = 100 * time.Millisecond

// Result is the outcome of one load
type Result struct {
	Path     string
	Document *document.Document
	Err      error
}

// Options tune a watch
type Options struct {
	// Debounce defaults to DefaultDebounce
	Debounce time.Duration
}

// Watch loads path once, then again after every change, passing each
// outcome to onResult. It blocks until ctx is done. The directory holding
// path is watched, not the file itself, so editors that replace the file
// by renaming over it are followed.
func Watch(ctx context.Context, fsys types.FS, path string, onResult func(Result), opts Options) error {
	logger := logging.GetLogger("watch")

	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", path)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to create file watcher")
	}
	defer func() {
		_ = watcher.Close()
	}()

	dir := filepath.Dir(target)
	if err := watcher.Add(dir); err != nil {
		return errors.Wrapf(err, errors.ErrNotFound, "cannot watch %s", dir).
			WithDetail("path", dir)
	}

	logger.Info().Str("path", target).Msg("Watching config file")

	reload := func() {
		doc, err := config.Load(fsys, target)
		onResult(Result{Path: target, Document: doc, Err: err})
	}
	reload()

	// A stopped timer with a drained channel; armed by relevant events.
	timer := time.NewTimer(opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Str("path", target).Msg("Watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("Config file changed")
			timer.Reset(opts.Debounce)

		case <-timer.C:
			reload()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("File watcher error")
		}
	}
}
