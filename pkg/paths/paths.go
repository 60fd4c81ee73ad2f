package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for paperman-specific files
	AppDirName = "paperman"

	// ConfigFileName is the name of the configuration file, looked up
	// directly inside the user's config directory
	ConfigFileName = "paperman.toml"
)

// ConfigFilePath returns the default location of the configuration file,
// $XDG_CONFIG_HOME/paperman.toml.
func ConfigFilePath() string {
	return filepath.Join(xdg.ConfigHome, ConfigFileName)
}
