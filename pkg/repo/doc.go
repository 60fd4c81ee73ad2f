// Package repo implements paperman's repository operations.
//
// Add moves regular files into the repository directory and leaves a
// relative symlink at each original location. List and Status are
// read-only companions: List shows what the repository holds, Status
// reports how given paths relate to it.
//
// All operations take their configuration as explicit option values and
// accept an injected filesystem, defaulting to the real one.
package repo
