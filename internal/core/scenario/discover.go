package scenario

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

const scriptPattern = "**/*.{yaml,yml}"

// Discover lists the scripts below dir as slash separated paths relative to
// dir, sorted. A missing dir yields no scripts.
func Discover(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), scriptPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("discover scripts in %s: %w", dir, err)
	}
	slices.Sort(matches)
	return matches, nil
}

// Name returns the script name for a discovered path: the path without its
// extension.
func Name(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// Resolve maps a command line argument to a script file. Existing paths are
// returned unchanged; otherwise arg is looked up by name in dir.
func Resolve(dir, arg string) (string, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}

	scripts, err := Discover(dir)
	if err != nil {
		return "", err
	}
	for _, s := range scripts {
		if s == arg || Name(s) == arg {
			return filepath.Join(dir, filepath.FromSlash(s)), nil
		}
	}
	return "", fmt.Errorf("script %q not found (checked the path and %s)", arg, dir)
}
