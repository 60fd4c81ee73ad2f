package types

import "time"

// AddedFile describes one file that was moved into the repository and
// replaced with a symlink.
type AddedFile struct {
	OriginalPath string `json:"originalPath"` // where the file used to live
	RepoPath     string `json:"repoPath"`     // where it lives now
	LinkTarget   string `json:"linkTarget"`   // relative symlink target written at OriginalPath
}

// SkippedFile describes an input that add refused to touch, with the reason.
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// AddResult holds the result of the 'add' command.
type AddResult struct {
	RepoDir   string        `json:"repoDir"`
	Added     []AddedFile   `json:"added"`
	Skipped   []SkippedFile `json:"skipped"`
	Timestamp time.Time     `json:"timestamp"`
}

// RepoEntry is one entry of the repository directory, as shown by 'list'.
type RepoEntry struct {
	Name  string             `json:"name"`
	Class FileClassification `json:"class"`
}

// ListResult holds the result of the 'list' command.
type ListResult struct {
	RepoDir string      `json:"repoDir"`
	Entries []RepoEntry `json:"entries"`
}

// LinkState describes how a path relates to the repository.
type LinkState string

const (
	// LinkStateLinked means the path is a symlink resolving into the repository
	LinkStateLinked LinkState = "linked"

	// LinkStateForeign means the path is a symlink pointing outside the repository
	LinkStateForeign LinkState = "foreign link"

	// LinkStateUnmanaged means the path is a regular file not yet added
	LinkStateUnmanaged LinkState = "unmanaged"

	// LinkStateDirectory means the path is a directory
	LinkStateDirectory LinkState = "directory"

	// LinkStateMissing means nothing exists at the path
	LinkStateMissing LinkState = "missing"
)

// PathStatus is the per-path report produced by the 'status' command.
type PathStatus struct {
	Path   string    `json:"path"`
	State  LinkState `json:"state"`
	Target string    `json:"target,omitempty"` // symlink target, when the path is a link
}

// StatusResult holds the result of the 'status' command.
type StatusResult struct {
	RepoDir string       `json:"repoDir"`
	Paths   []PathStatus `json:"paths"`
}
