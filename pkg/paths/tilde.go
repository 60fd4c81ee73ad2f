package paths

import (
	"os"
	"strings"
)

// Expand rewrites a leading ~ to the current user's home directory.
//
// The boolean reports whether the path could be resolved: it is false only
// when the path needs the home directory and none could be determined.
// A ~user prefix naming another user is passed through untouched, as is
// any path that does not start with ~.
func Expand(path string) (string, bool) {
	if path == "" || path[0] != '~' {
		return path, true
	}

	if len(path) > 1 && path[1] != '/' {
		// ~user form, only the current user's home can be resolved
		return path, true
	}

	home, ok := homeDir()
	if !ok {
		return "", false
	}

	if len(path) == 1 {
		return home, true
	}

	// Concatenation instead of filepath.Join: Join would clean away a
	// trailing slash, and a root home would gain a doubled slash
	return strings.TrimSuffix(home, "/") + path[1:], true
}

// homeDir resolves the current user's home directory
func homeDir() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv(EnvHome)
	}
	if home == "" {
		return "", false
	}
	return home, true
}
