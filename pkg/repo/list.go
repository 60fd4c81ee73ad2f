package repo

import (
	"os"
	"path/filepath"

	"github.com/yuttie/paperman/pkg/errors"
	"github.com/yuttie/paperman/pkg/filesystem"
	"github.com/yuttie/paperman/pkg/logging"
	"github.com/yuttie/paperman/pkg/paths"
	"github.com/yuttie/paperman/pkg/types"
)

// ListOptions holds options for the list operation
type ListOptions struct {
	// RepoDir is the repository directory to list
	RepoDir string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// List reports the entries of the repository directory in name order.
// A repository that has not been created yet lists as empty rather than
// failing, since add creates it on first use.
func List(opts ListOptions) (*types.ListResult, error) {
	logger := logging.GetLogger("repo.list")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	if opts.RepoDir == "" {
		return nil, errors.New(errors.ErrConfigValid, "repository directory not set")
	}

	result := &types.ListResult{
		RepoDir: opts.RepoDir,
		Entries: []types.RepoEntry{},
	}

	entries, err := fs.ReadDir(opts.RepoDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("repo_dir", opts.RepoDir).Msg("Repository does not exist yet")
			return result, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read repository directory %s", opts.RepoDir)
	}

	for _, entry := range entries {
		class, err := paths.Classify(fs, filepath.Join(opts.RepoDir, entry.Name()))
		if err != nil {
			return nil, err
		}
		result.Entries = append(result.Entries, types.RepoEntry{
			Name:  entry.Name(),
			Class: class,
		})
	}

	logger.Debug().
		Str("repo_dir", opts.RepoDir).
		Int("entries", len(result.Entries)).
		Msg("Repository listed")

	return result, nil
}
