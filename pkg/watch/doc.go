// Package watch re-validates a config file each time it changes on disk.
//
// Each reload is an ordinary one-shot config.Load; the watcher only decides
// when to run it. Bursts of events from editors that write, rename and
// chmod in quick succession are debounced into a single reload.
package watch
