// Package render writes a document as the native config module of the CSS
// build tool (tailwind.config.js), so the tool can consume a validated
// document without twcfg running at build time.
package render
