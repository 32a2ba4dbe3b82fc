// Package document defines the configuration document consumed by the
// external CSS generation tool: the content-scan globs, the theme
// extensions and the plugin list.
//
// A Document is validated once, when it is built, and is immutable from
// then on. Accessors hand out copies so no caller can change what another
// caller sees. Loading from disk lives in pkg/config.
package document
