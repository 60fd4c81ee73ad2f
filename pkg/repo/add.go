package repo

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/yuttie/paperman/pkg/errors"
	"github.com/yuttie/paperman/pkg/filesystem"
	"github.com/yuttie/paperman/pkg/logging"
	"github.com/yuttie/paperman/pkg/paths"
	"github.com/yuttie/paperman/pkg/types"
)

// Skip reasons reported for inputs add refuses to touch
const (
	ReasonDirectory = "is a directory"
	ReasonSymlink   = "is a symlink"
)

// AddOptions holds options for the add operation
type AddOptions struct {
	// RepoDir is the repository directory files are moved into
	RepoDir string
	// Paths are the files to add, processed in the order given
	Paths []string
	// Force replaces an existing repository entry with the same name
	Force bool
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Add moves each given regular file into the repository directory and
// creates a relative symlink at its original location pointing back at
// the moved file.
//
// Directory and symlink inputs are not moved: they are recorded in the
// result's Skipped list and processing continues with the next input.
// Running add again on an already-added path therefore skips it, since
// its original location is now a symlink. Any filesystem failure aborts
// the whole batch; files moved before the failure stay moved.
func Add(opts AddOptions) (*types.AddResult, error) {
	logger := logging.GetLogger("repo.add")
	logger.Info().
		Str("repo_dir", opts.RepoDir).
		Strs("paths", opts.Paths).
		Bool("force", opts.Force).
		Msg("Adding files to repository")

	fs := opts.FileSystem
	if fs == nil {
		fs = filesystem.NewOS()
	}

	if opts.RepoDir == "" {
		return nil, errors.New(errors.ErrConfigValid, "repository directory not set")
	}

	result := &types.AddResult{
		RepoDir:   opts.RepoDir,
		Added:     []types.AddedFile{},
		Skipped:   []types.SkippedFile{},
		Timestamp: time.Now(),
	}

	for _, path := range opts.Paths {
		added, skipped, err := addSingleFile(fs, logger, opts.RepoDir, path, opts.Force)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Add aborted")
			return nil, err
		}
		if skipped != nil {
			result.Skipped = append(result.Skipped, *skipped)
			continue
		}
		result.Added = append(result.Added, *added)
	}

	logger.Info().
		Int("added", len(result.Added)).
		Int("skipped", len(result.Skipped)).
		Msg("Add completed")

	return result, nil
}

// addSingleFile moves one input into the repository and links it back.
// Invalid input types come back as a skip record, everything else that
// goes wrong is an error that stops the batch.
func addSingleFile(fs types.FS, logger zerolog.Logger, repoDir, path string, force bool) (*types.AddedFile, *types.SkippedFile, error) {
	// Expand a leading ~ so paperman works the same when the shell did
	// not get a chance to. If no home directory is known the raw path
	// falls through and fails classification below.
	expanded, ok := paths.Expand(path)
	if !ok {
		expanded = path
	}

	class, err := paths.Classify(fs, expanded)
	if err != nil {
		return nil, nil, err
	}

	switch class {
	case types.ClassDirectory:
		logger.Debug().Str("path", expanded).Msg("Skipping directory")
		return nil, &types.SkippedFile{Path: path, Reason: ReasonDirectory}, nil
	case types.ClassSymlink:
		logger.Debug().Str("path", expanded).Msg("Skipping symlink")
		return nil, &types.SkippedFile{Path: path, Reason: ReasonSymlink}, nil
	}

	source, err := paths.Canonicalize(expanded)
	if err != nil {
		return nil, nil, err
	}

	dest := filepath.Join(repoDir, filepath.Base(source))

	if _, err := fs.Lstat(dest); err == nil {
		if !force {
			return nil, nil, errors.Newf(errors.ErrDestExists,
				"destination already exists: %s (use --force to overwrite)", dest)
		}
		logger.Warn().Str("dest", dest).Msg("Overwriting existing repository entry")
	}

	if err := fs.MkdirAll(repoDir, 0755); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create repository directory %s", repoDir)
	}

	// Same-filesystem move. A cross-device rename fails here and is not
	// retried as copy+delete.
	if err := fs.Rename(source, dest); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrFileMove,
			"failed to move %s to %s", source, dest)
	}

	relTarget, err := paths.RelativeTo(filepath.Dir(source), dest)
	if err != nil {
		return nil, nil, err
	}

	// The file stays in the repository even if the link cannot be
	// written; there is no rollback of the rename.
	if err := fs.Symlink(relTarget, source); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to create symlink at %s", source)
	}

	logger.Info().
		Str("source", source).
		Str("dest", dest).
		Str("target", relTarget).
		Msg("File added to repository")

	return &types.AddedFile{
		OriginalPath: source,
		RepoPath:     dest,
		LinkTarget:   relTarget,
	}, nil, nil
}
