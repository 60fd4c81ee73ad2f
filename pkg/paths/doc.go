// Package paths provides path handling for paperman.
//
// It covers the four path concerns the tool is built on:
//
//   - Tilde expansion of user-supplied paths (Expand)
//   - Canonicalization to absolute, symlink-free paths (Canonicalize)
//   - Relative path computation between two locations (RelativeTo)
//   - File type classification without following symlinks (Classify)
//
// It also locates paperman's own configuration file following the XDG
// Base Directory specification.
package paths
