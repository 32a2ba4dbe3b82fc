// Package types defines the small set of interfaces shared across twcfg
// packages, chiefly the FS abstraction the loader reads through.
package types
