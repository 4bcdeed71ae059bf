package app

import (
	"io"
	"path/filepath"
	"testing"

	"youi-build/internal/adapters"
	"youi-build/internal/core"
	"youi-build/tests/testutil"
)

type testService struct {
	Service
	runner *testutil.RecordingRunner
	engine *testutil.StaticEngine
}

func newTestService(t *testing.T) testService {
	t.Helper()
	runner := testutil.NewRecordingRunner()
	engine := &testutil.StaticEngine{Dir: t.TempDir()}
	return testService{
		Service: Service{
			Runner:      runner,
			Tools:       testutil.StaticProbe{"make": "/usr/bin/make"},
			Engine:      engine,
			Cache:       adapters.NewCMakeCacheAdapter(),
			Synthesizer: core.CommandSynthesizer{GOOS: "linux"},
			Hints:       io.Discard,
		},
		runner: runner,
		engine: engine,
	}
}

// newProject returns a source directory holding a CMakeLists.txt.
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "CMakeLists.txt"), "project(SampleApp)\n")
	return dir
}

// newGeneratedBuild returns a build directory whose CMakeCache.txt holds cache.
func newGeneratedBuild(t *testing.T, cache string) string {
	t.Helper()
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, "CMakeCache.txt"), cache)
	return dir
}
