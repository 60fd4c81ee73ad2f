// Package types defines the core types and interfaces used throughout paperman.
// This includes the FS filesystem abstraction, file classification, and the
// result structures returned by the add, list, and status commands.
package types
