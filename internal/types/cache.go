package types

import "strings"

// CMakeCacheFacts holds the KEY:TYPE=VALUE records of a generated CMakeCache.txt.
// Keys are stored upper-cased; lookups are case-insensitive.
type CMakeCacheFacts struct {
	Path    string
	entries map[string]string
}

func NewCMakeCacheFacts(path string, entries map[string]string) CMakeCacheFacts {
	normalized := make(map[string]string, len(entries))
	for key, value := range entries {
		normalized[strings.ToUpper(key)] = value
	}
	return CMakeCacheFacts{Path: path, entries: normalized}
}

func (f CMakeCacheFacts) Get(key string) (string, bool) {
	value, ok := f.entries[strings.ToUpper(key)]
	return value, ok
}

const (
	CacheKeyPlatform       = "YI_PLATFORM"
	CacheKeyProjectName    = "CMAKE_PROJECT_NAME"
	CacheKeyOutputFilename = "YI_OUTPUT_FILENAME"
	CacheKeyPackageID      = "YI_PACKAGE_ID"
)
