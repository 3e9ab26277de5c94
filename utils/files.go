package utils

import "path/filepath"

func FriendlyFileName(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
