package util

import (
	"path/filepath"
)

// Up returns the parent of dir, or dir itself at the filesystem root.
func Up(dir string) string {
	return filepath.Dir(filepath.Clean(dir))
}
