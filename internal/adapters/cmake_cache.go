package adapters

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"youi-build/internal/ports"
	"youi-build/internal/shared"
	"youi-build/internal/types"
)

const cmakeCacheFile = "CMakeCache.txt"

var cacheEntryPattern = regexp.MustCompile(`^([A-Za-z0-9_.+\-/]+):([A-Za-z]+)=(.*)$`)

type CMakeCacheAdapter struct{}

func NewCMakeCacheAdapter() CMakeCacheAdapter {
	return CMakeCacheAdapter{}
}

func (a CMakeCacheAdapter) HasCache(buildDir string) bool {
	return shared.IsFile(filepath.Join(buildDir, cmakeCacheFile))
}

func (a CMakeCacheAdapter) ReadCache(buildDir string) (types.CMakeCacheFacts, error) {
	path := filepath.Join(buildDir, cmakeCacheFile)
	file, err := os.Open(path)
	if err != nil {
		return types.CMakeCacheFacts{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("CMakeCache not found at %s. Ensure the project is properly generated before building", path)).
			WithCause(err)
	}
	defer file.Close()
	entries, err := ParseCMakeCache(bufio.NewScanner(file))
	if err != nil {
		return types.CMakeCacheFacts{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to read %s", path)).
			WithCause(err)
	}
	return types.NewCMakeCacheFacts(path, entries), nil
}

// ParseCMakeCache collects KEY:TYPE=VALUE records, skipping comments and blank lines.
// The first record for a key wins.
func ParseCMakeCache(scanner *bufio.Scanner) (map[string]string, error) {
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	entries := map[string]string{}
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		match := cacheEntryPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		key := strings.ToUpper(match[1])
		if _, ok := entries[key]; ok {
			continue
		}
		entries[key] = strings.TrimSpace(match[3])
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

var _ ports.CMakeCachePort = CMakeCacheAdapter{}
