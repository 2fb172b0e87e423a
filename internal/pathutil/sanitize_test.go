package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRewriteTarget(t *testing.T) {
	t.Run("regular file accepted", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "openapi.yaml")
		require.NoError(t, os.WriteFile(target, []byte("openapi: 3.0.3\n"), 0o640))

		got, mode, err := ResolveRewriteTarget(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
		if runtime.GOOS != "windows" {
			assert.Equal(t, os.FileMode(0o640), mode)
		}
	})

	t.Run("dot-dot segments cleaned", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o750))
		target := filepath.Join(dir, "openapi.json")
		require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))

		got, _, err := ResolveRewriteTarget(filepath.Join(dir, "sub", "..", "openapi.json"))
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("missing file rejected", func(t *testing.T) {
		_, _, err := ResolveRewriteTarget(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("directory rejected", func(t *testing.T) {
		_, _, err := ResolveRewriteTarget(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a regular file")
	})

	t.Run("symlink rejected", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("symlinks require elevated privileges on windows")
		}
		dir := t.TempDir()
		real := filepath.Join(dir, "real.yaml")
		require.NoError(t, os.WriteFile(real, []byte("x"), 0o600))
		link := filepath.Join(dir, "link.yaml")
		require.NoError(t, os.Symlink(real, link))

		_, _, err := ResolveRewriteTarget(link)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})
}
