package paths

import (
	"path/filepath"
	"strings"

	"github.com/yuttie/paperman/pkg/errors"
)

// Canonicalize returns the absolute form of path with all symlinks and
// dot components resolved. The path must exist.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "failed to make %s absolute", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrPathResolve, "failed to resolve %s", path)
	}

	return resolved, nil
}

// RelativeTo computes the relative path that reaches target from base.
// Both arguments are canonicalized first, so either may contain symlinks,
// and both must exist. Equal paths yield ".".
//
// The computation walks base upward one component at a time until it is an
// ancestor of target, then prefixes the remaining target suffix with one
// ".." per step taken. Reaching the filesystem root without finding a
// common ancestor is reported as ErrNoCommonAncestor; on a single-rooted
// filesystem this cannot happen for two absolute paths.
func RelativeTo(base, target string) (string, error) {
	cbase, err := Canonicalize(base)
	if err != nil {
		return "", err
	}

	ctarget, err := Canonicalize(target)
	if err != nil {
		return "", err
	}

	if cbase == ctarget {
		return ".", nil
	}

	ascents := 0
	for !isPathPrefix(cbase, ctarget) {
		parent := filepath.Dir(cbase)
		if parent == cbase {
			return "", errors.Newf(errors.ErrNoCommonAncestor,
				"no common ancestor between %s and %s", cbase, ctarget)
		}
		cbase = parent
		ascents++
	}

	suffix := strings.TrimPrefix(strings.TrimPrefix(ctarget, cbase), "/")

	parts := make([]string, 0, ascents+1)
	for i := 0; i < ascents; i++ {
		parts = append(parts, "..")
	}
	if suffix != "" {
		parts = append(parts, suffix)
	}

	return filepath.Join(parts...), nil
}

// Contains reports whether path sits at or below dir. Both arguments must
// already be canonical.
func Contains(dir, path string) bool {
	return isPathPrefix(dir, path)
}

// isPathPrefix reports whether base is a component-wise prefix of target
func isPathPrefix(base, target string) bool {
	if base == target {
		return true
	}

	prefix := base
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return strings.HasPrefix(target, prefix)
}
