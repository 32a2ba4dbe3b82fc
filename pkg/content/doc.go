// Package content resolves a document's content globs against a directory
// tree, for diagnostics: which files a build would scan and which patterns
// match nothing. Matched files are listed, never opened.
package content
