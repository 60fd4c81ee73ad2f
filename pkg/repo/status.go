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

// StatusOptions holds options for the status operation
type StatusOptions struct {
	// RepoDir is the repository directory links are checked against
	RepoDir string
	// Paths are the paths to report on, in the order given
	Paths []string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Status reports, for each given path, how it relates to the repository:
// a symlink resolving into it (linked), a symlink pointing elsewhere
// (foreign link), a regular file (unmanaged), a directory, or nothing at
// all (missing). Status never mutates the filesystem.
func Status(opts StatusOptions) (*types.StatusResult, error) {
	logger := logging.GetLogger("repo.status")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	if opts.RepoDir == "" {
		return nil, errors.New(errors.ErrConfigValid, "repository directory not set")
	}

	// The repository path may itself sit behind symlinks; compare link
	// targets against its canonical form. A repository that does not
	// exist yet cannot be the target of a managed link.
	repoCanon, err := paths.Canonicalize(opts.RepoDir)
	if err != nil {
		repoCanon = filepath.Clean(opts.RepoDir)
	}

	result := &types.StatusResult{
		RepoDir: opts.RepoDir,
		Paths:   []types.PathStatus{},
	}

	for _, path := range opts.Paths {
		status, err := pathStatus(fs, repoCanon, path)
		if err != nil {
			return nil, err
		}
		result.Paths = append(result.Paths, *status)
	}

	logger.Debug().
		Str("repo_dir", opts.RepoDir).
		Int("paths", len(result.Paths)).
		Msg("Status computed")

	return result, nil
}

// pathStatus inspects a single path without following it
func pathStatus(fs types.FS, repoCanon, path string) (*types.PathStatus, error) {
	expanded, ok := paths.Expand(path)
	if !ok {
		expanded = path
	}

	info, err := fs.Lstat(expanded)
	if err != nil {
		if os.IsNotExist(err) {
			return &types.PathStatus{Path: path, State: types.LinkStateMissing}, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", expanded)
	}

	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		target, err := fs.Readlink(expanded)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read symlink %s", expanded)
		}

		state := types.LinkStateForeign
		if resolvesInto(repoCanon, expanded, target) {
			state = types.LinkStateLinked
		}
		return &types.PathStatus{Path: path, State: state, Target: target}, nil
	case mode.IsDir():
		return &types.PathStatus{Path: path, State: types.LinkStateDirectory}, nil
	case mode.IsRegular():
		return &types.PathStatus{Path: path, State: types.LinkStateUnmanaged}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unsupported file type at %s (mode %s)", expanded, mode)
	}
}

// resolvesInto reports whether the symlink at linkPath, with the given
// target, points inside the repository. Relative targets resolve against
// the link's parent directory, the way the kernel resolves them.
func resolvesInto(repoCanon, linkPath, target string) bool {
	abs := target
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(filepath.Dir(linkPath), target)
	}

	// Dangling links cannot be canonicalized; fall back to the cleaned
	// path so a link into a deleted repository entry still reads as ours
	resolved, err := paths.Canonicalize(abs)
	if err != nil {
		resolved = filepath.Clean(abs)
	}

	return paths.Contains(repoCanon, resolved)
}
