package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/yuttie/paperman/pkg/errors"
	"github.com/yuttie/paperman/pkg/types"
)

const initHeader = `# paperman configuration
# repo_dir is the directory added files are moved into.
# A leading ~ expands to your home directory.

`

// Default returns the starter configuration written by 'config --init'.
func Default() *Config {
	return &Config{
		RepoDir: "~/paperman",
	}
}

// WriteDefault writes a starter configuration file at path. An existing
// file is never overwritten.
func WriteDefault(fsys types.FS, path string) error {
	if _, err := fsys.Stat(path); err == nil {
		return errors.Newf(errors.ErrDestExists, "config file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}

	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigDir, "failed to create config directory for %s", path)
	}

	if err := fsys.WriteFile(path, append([]byte(initHeader), data...), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
	}

	return nil
}
