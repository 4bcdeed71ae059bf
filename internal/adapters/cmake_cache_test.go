package adapters

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youi-build/internal/types"
)

const sampleCache = `# This is the CMakeCache file.
# For build in directory: /work/build/ios

//Build type
CMAKE_BUILD_TYPE:STRING=Debug

//Value Computed by CMake
CMAKE_PROJECT_NAME:STATIC=SampleApp
YI_PLATFORM:STRING=Ios  
YI_PLATFORM:STRING=Linux
CMAKE_CXX_FLAGS:STRING=-O2 -g
not a cache entry
`

func TestParseCMakeCache(t *testing.T) {
	entries, err := ParseCMakeCache(bufio.NewScanner(strings.NewReader(sampleCache)))
	require.NoError(t, err)
	want := map[string]string{
		"CMAKE_BUILD_TYPE":   "Debug",
		"CMAKE_PROJECT_NAME": "SampleApp",
		"YI_PLATFORM":        "Ios",
		"CMAKE_CXX_FLAGS":    "-O2 -g",
	}
	if diff := cmp.Diff(want, entries); diff != "" {
		t.Fatalf("unexpected cache entries (-want +got):\n%s", diff)
	}
}

func TestCMakeCacheAdapter_ReadCache(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CMakeCache.txt"), []byte(sampleCache), 0644))

	adapter := NewCMakeCacheAdapter()
	assert.True(t, adapter.HasCache(dir))
	facts, err := adapter.ReadCache(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "CMakeCache.txt"), facts.Path)
	platform, ok := facts.Get("yi_platform")
	require.True(t, ok)
	assert.Equal(t, "Ios", platform)
	_, ok = facts.Get(types.CacheKeyPackageID)
	assert.False(t, ok)
}

func TestCMakeCacheAdapter_MissingCache(t *testing.T) {
	dir := t.TempDir()
	adapter := NewCMakeCacheAdapter()
	assert.False(t, adapter.HasCache(dir))

	_, err := adapter.ReadCache(dir)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "CMakeCache not found")
}
