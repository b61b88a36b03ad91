package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// invalidFilenameChars are rejected in artifact names on any platform
const invalidFilenameChars = `<>:"|?*\/`

// reservedNames are device names Windows refuses as file base names
var reservedNames = func() map[string]bool {
	m := map[string]bool{"CON": true, "PRN": true, "AUX": true, "NUL": true}
	for i := 1; i <= 9; i++ {
		m[fmt.Sprintf("COM%d", i)] = true
		m[fmt.Sprintf("LPT%d", i)] = true
	}
	return m
}()

// IsValidFilename reports whether name can be used as a single path
// element for the output artifact
func IsValidFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, invalidFilenameChars) {
		return false
	}
	if strings.IndexFunc(name, unicode.IsControl) >= 0 {
		return false
	}

	base := strings.ToUpper(name)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return !reservedNames[base]
}

// EnsureDir creates the parent directory of path
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
