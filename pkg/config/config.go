package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/yuttie/paperman/pkg/errors"
	"github.com/yuttie/paperman/pkg/logging"
	"github.com/yuttie/paperman/pkg/paths"
)

// EnvPrefix is the prefix for environment overrides; PAPERMAN_REPO_DIR
// overrides the repo_dir key.
const EnvPrefix = "PAPERMAN_"

// Config holds paperman's runtime configuration.
type Config struct {
	// RepoDir is the directory added files are moved into. A leading ~ is
	// expanded and the path made absolute at load time.
	RepoDir string `koanf:"repo_dir" toml:"repo_dir"`

	// RawRepoDir keeps the configured value as written, before tilde
	// expansion, for display
	RawRepoDir string `koanf:"-" toml:"-"`
}

// Load reads the configuration file at path, applies environment
// overrides, and validates the result. A missing or unreadable file is a
// fatal error, reported before any filesystem mutation happens.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigRead, "cannot read config file %s", path)
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	// Environment overrides layer on top of the file. The keys are flat,
	// so the prefix is stripped and the rest lowercased without any
	// separator rewriting.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigRead, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to unmarshal %s", path)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("repo_dir", cfg.RepoDir).
		Msg("Configuration loaded")

	return &cfg, nil
}

// normalize expands and absolutizes RepoDir, rejecting unusable values
func (c *Config) normalize() error {
	if c.RepoDir == "" {
		return errors.New(errors.ErrConfigValid, "repo_dir must be set")
	}

	c.RawRepoDir = c.RepoDir

	expanded, ok := paths.Expand(c.RepoDir)
	if !ok {
		return errors.Newf(errors.ErrConfigValid,
			"cannot expand repo_dir %s: home directory unknown", c.RepoDir)
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigValid, "cannot resolve repo_dir %s", expanded)
	}

	c.RepoDir = abs
	return nil
}
