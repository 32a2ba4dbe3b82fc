// Package filesystem provides filesystem implementations for twcfg.
//
// This package contains implementations of the types.FS interface:
// the OS filesystem, whose writes are atomic, and an afero-backed one
// used by tests.
package filesystem
