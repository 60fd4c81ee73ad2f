package types

// FileClassification reports what kind of entry a path points at.
// Classification is based on lstat, so a symlink is reported as a symlink
// rather than as whatever it points to.
type FileClassification string

const (
	// ClassRegularFile indicates a plain regular file
	ClassRegularFile FileClassification = "file"

	// ClassDirectory indicates a directory
	ClassDirectory FileClassification = "directory"

	// ClassSymlink indicates a symbolic link, regardless of its target
	ClassSymlink FileClassification = "symlink"
)
