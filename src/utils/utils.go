package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const maskedTokenVisibleChars = 4

// Returns error if the path does not exist or is not a directory
func CheckIfDirExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", dirPath)
	}

	return nil
}

// Reports whether the file exists and is a regular file
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Reports whether any component of the slash or OS separated relative path
// starts with a dot
func IsHiddenPath(relPath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if part != "." && part != ".." && strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// Returns the base name of the file without its extension
func FileNameWithoutExt(filePath string) string {
	base := filepath.Base(filePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Masks all but the first and last few characters of a secret so it can be
// logged
func MaskToken(token string) string {
	if len(token) <= 2*maskedTokenVisibleChars {
		return strings.Repeat("*", len(token))
	}
	return token[:maskedTokenVisibleChars] + "..." +
		token[len(token)-maskedTokenVisibleChars:]
}
