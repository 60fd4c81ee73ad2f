// Package filesystem provides filesystem implementations for paperman.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem.
package filesystem
