// Package config loads and validates paperman's configuration.
//
// Configuration lives in a single TOML file, paperman.toml, inside the
// user's config directory. The file is required: paperman refuses to guess
// where the repository should live. Individual keys can be overridden
// through PAPERMAN_* environment variables, so PAPERMAN_REPO_DIR takes
// precedence over the repo_dir key from the file.
package config
