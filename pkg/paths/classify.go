package paths

import (
	"os"

	"github.com/yuttie/paperman/pkg/errors"
	"github.com/yuttie/paperman/pkg/types"
)

// Classify reports what kind of entry sits at path. It uses lstat, so a
// symlink is classified as a symlink no matter what it points at, and a
// dangling link is still a link.
func Classify(fsys types.FS, path string) (types.FileClassification, error) {
	info, err := fsys.Lstat(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "failed to stat %s", path)
	}

	mode := info.Mode()
	switch {
	case mode&os.ModeSymlink != 0:
		return types.ClassSymlink, nil
	case mode.IsDir():
		return types.ClassDirectory, nil
	case mode.IsRegular():
		return types.ClassRegularFile, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput,
			"unsupported file type at %s (mode %s)", path, mode)
	}
}
