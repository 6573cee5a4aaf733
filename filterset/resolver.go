package filterset

import (
	"os"
	"path/filepath"

	"github.com/boolean-maybe/tagq/config"
)

// Find searches for a filter file in various locations
// Search order: absolute path → cwd → project config dir → user config dir
func Find(filename string) string {
	return findIn(filename, config.GetFilterSearchPaths())
}

func findIn(filename string, searchPaths []string) string {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename
		}
		return ""
	}

	paths := []string{filename}
	for _, dir := range searchPaths {
		paths = append(paths, filepath.Join(dir, filename))
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
