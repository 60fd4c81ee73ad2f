package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuttie/paperman/pkg/errors"
)

func TestRelativeTo(t *testing.T) {
	// RelativeTo canonicalizes its arguments, so both must exist. Build a
	// small tree mirroring a /usr-style layout.
	root := t.TempDir()
	for _, d := range []string{"usr/bin", "usr/share/doc", "opt/tools"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, d), 0755))
	}

	tests := []struct {
		name   string
		base   string
		target string
		want   string
	}{
		{"direct child", "usr", "usr/share", "share"},
		{"grandchild", "usr", "usr/share/doc", "share/doc"},
		{"sibling", "usr/bin", "usr/share", "../share"},
		{"nephew", "usr/bin", "usr/share/doc", "../share/doc"},
		{"distant branch", "usr/share/doc", "opt/tools", "../../../opt/tools"},
		{"parent", "usr/share", "usr", ".."},
		{"same path", "usr/share", "usr/share", "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativeTo(filepath.Join(root, tt.base), filepath.Join(root, tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("trailing slash on base is irrelevant", func(t *testing.T) {
		got, err := RelativeTo(root+"/usr/", filepath.Join(root, "usr/share"))
		require.NoError(t, err)
		assert.Equal(t, "share", got)
	})

	t.Run("symlinked base canonicalizes", func(t *testing.T) {
		link := filepath.Join(root, "usrlink")
		require.NoError(t, os.Symlink(filepath.Join(root, "usr"), link))

		got, err := RelativeTo(link, filepath.Join(root, "usr/share"))
		require.NoError(t, err)
		assert.Equal(t, "share", got)
	})

	t.Run("missing target is a resolve error", func(t *testing.T) {
		_, err := RelativeTo(filepath.Join(root, "usr"), filepath.Join(root, "nope"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPathResolve))
	})

	t.Run("missing base is a resolve error", func(t *testing.T) {
		_, err := RelativeTo(filepath.Join(root, "nope"), filepath.Join(root, "usr"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPathResolve))
	})
}

func TestCanonicalize(t *testing.T) {
	root := t.TempDir()
	realDir := filepath.Join(root, "real")
	require.NoError(t, os.MkdirAll(realDir, 0755))
	link := filepath.Join(root, "alias")
	require.NoError(t, os.Symlink(realDir, link))

	// The temp dir itself may sit behind symlinks, compare against its
	// canonical form
	canonRoot, err := Canonicalize(root)
	require.NoError(t, err)

	t.Run("resolves symlinks", func(t *testing.T) {
		got, err := Canonicalize(link)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(canonRoot, "real"), got)
	})

	t.Run("already canonical path is unchanged", func(t *testing.T) {
		got, err := Canonicalize(canonRoot)
		require.NoError(t, err)
		assert.Equal(t, canonRoot, got)
	})

	t.Run("missing path errors", func(t *testing.T) {
		_, err := Canonicalize(filepath.Join(root, "missing"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrPathResolve))
	})
}

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		path string
		want bool
	}{
		{"direct child", "/repo", "/repo/file", true},
		{"nested child", "/repo", "/repo/a/b", true},
		{"dir itself", "/repo", "/repo", true},
		{"root contains all", "/", "/anything", true},
		{"string prefix but different component", "/repo", "/repofile", false},
		{"outside", "/repo", "/other", false},
		{"parent", "/repo/a", "/repo", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Contains(tt.dir, tt.path))
		})
	}
}
