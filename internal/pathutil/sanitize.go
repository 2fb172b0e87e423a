package pathutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ResolveRewriteTarget validates a file that is about to be overwritten in
// place. The path is cleaned and made absolute; it must name an existing
// regular file, not a symlink. The returned mode carries the file's current
// permission bits.
func ResolveRewriteTarget(path string) (string, fs.FileMode, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", 0, fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	if err != nil {
		return "", 0, fmt.Errorf("pathutil: cannot stat path: %w", err)
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return "", 0, fmt.Errorf("pathutil: refusing to rewrite symlink: %s", abs)
	case !info.Mode().IsRegular():
		return "", 0, fmt.Errorf("pathutil: not a regular file: %s", abs)
	}

	return abs, info.Mode().Perm(), nil
}
