// Package filesystem resolves the directories ytsurf reads and writes.
// Each root is independently overridable via an environment variable, then
// the matching XDG variable, then a hard-coded location under the user's
// home directory.
package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the current user's home directory.
// If the home directory cannot be determined, it returns "." as a fallback.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// CacheRoot is where search-result cache entries and the history log live.
func CacheRoot() string {
	if dir := os.Getenv("YTSURF_CACHE_DIR"); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "ytsurf")
	}
	return filepath.Join(UserHomeDir(), ".cache", "ytsurf")
}

// ConfigRoot holds the key=value configuration file.
func ConfigRoot() string {
	if dir := os.Getenv("YTSURF_CONFIG_DIR"); dir != "" {
		return dir
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ytsurf")
	}
	return filepath.Join(UserHomeDir(), ".config", "ytsurf")
}

// DownloadRoot is the default destination for downloaded videos.
func DownloadRoot() string {
	if dir := os.Getenv("YTSURF_DOWNLOAD_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(UserHomeDir(), "Videos", "ytsurf")
}
