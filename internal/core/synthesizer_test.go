package core

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youi-build/internal/types"
	"youi-build/tests/testutil"
)

func TestGradleProject(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		wrapper string
		want    bool
	}{
		{name: "unix wrapper", goos: "linux", wrapper: "gradlew", want: true},
		{name: "windows wrapper", goos: "windows", wrapper: "gradlew.bat", want: true},
		{name: "unix wrapper on windows", goos: "windows", wrapper: "gradlew", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buildDir := t.TempDir()
			testutil.WriteFile(t, filepath.Join(buildDir, "project", tt.wrapper), "")
			dir, ok := CommandSynthesizer{GOOS: tt.goos}.GradleProject(buildDir)
			assert.Equal(t, tt.want, ok)
			if tt.want {
				assert.Equal(t, filepath.Join(buildDir, "project"), dir)
			}
		})
	}
}

func TestGradleTask(t *testing.T) {
	cmd := CommandSynthesizer{GOOS: "linux"}.GradleTask("/work/build/project", "assembleDebug")
	assert.Equal(t, []string{"./gradlew", "assembleDebug"}, cmd.Args)
	assert.Equal(t, "/work/build/project", cmd.Dir)
	assert.True(t, cmd.ChangeDir)
	assert.Equal(t, "gradle assembleDebug", cmd.Step)

	cmd = CommandSynthesizer{GOOS: "windows"}.GradleTask(`C:\build\project`, "installDebug")
	assert.Equal(t, []string{`.\gradlew.bat`, "installDebug"}, cmd.Args)
}

func TestGenerateCommand(t *testing.T) {
	synth := CommandSynthesizer{GOOS: "linux"}
	tests := []struct {
		name string
		cfg  types.GenerateConfig
		want []string
	}{
		{
			name: "cmake",
			cfg: types.GenerateConfig{
				Platform:        types.PlatformLinux,
				Generator:       GeneratorUnixMakefiles,
				SourceDirectory: "/src",
				BuildDirectory:  "/src/build/linux/Debug",
				Defines:         map[string]string{"CMAKE_BUILD_TYPE": "Debug", "A": "1"},
			},
			want: []string{"cmake", "-B/src/build/linux/Debug", "-H/src", "-G", "Unix Makefiles", "-DA=1", "-DCMAKE_BUILD_TYPE=Debug"},
		},
		{
			name: "ps4 uses bundled cmake",
			cfg: types.GenerateConfig{
				Platform:        types.PlatformPS4,
				Generator:       GeneratorVS2015,
				SourceDirectory: "/src",
				BuildDirectory:  "/src/build/ps4",
				Defines:         map[string]string{},
			},
			want: []string{"/engine/tools/build/cmake/bin/cmake.exe", "-B/src/build/ps4", "-H/src", "-G", "Visual Studio 14"},
		},
		{
			name: "android runs the project script",
			cfg: types.GenerateConfig{
				Platform:        types.PlatformAndroid,
				Generator:       GeneratorAndroidStudio,
				SourceDirectory: "/src",
				BuildDirectory:  "/src/build/android",
				Defines:         map[string]string{"YI_LOCAL_JS": "ON"},
			},
			want: []string{
				"cmake", "-DYI_OUTPUT_DIR=/src/build/android", "-DYI_LOCAL_JS=ON",
				"-P", "/engine/cmake/Modules/YiGenerateAndroidStudioProject.cmake",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := synth.GenerateCommand(context.Background(), tt.cfg, "/engine")
			if diff := cmp.Diff(tt.want, cmd.Args); diff != "" {
				t.Fatalf("unexpected command (-want +got):\n%s", diff)
			}
			assert.False(t, cmd.ChangeDir)
		})
	}
}

func TestWithToolchain(t *testing.T) {
	source := t.TempDir()
	engine := t.TempDir()
	engineToolchain := filepath.Join(engine, "cmake", "Toolchain", "Toolchain-TizenNacl.cmake")
	testutil.WriteFile(t, engineToolchain, "")
	cfg := types.GenerateConfig{Platform: types.PlatformTizenNaCl, SourceDirectory: source, Defines: map[string]string{}}

	got := WithToolchain(cfg, engine)
	assert.Equal(t, engineToolchain, got.Defines[types.DefineToolchainFile])
	assert.Empty(t, cfg.Defines, "input defines must not be modified")

	projectToolchain := filepath.Join(source, "cmake", "Toolchain", "Toolchain-TizenNacl.cmake")
	testutil.WriteFile(t, projectToolchain, "")
	got = WithToolchain(cfg, engine)
	assert.Equal(t, projectToolchain, got.Defines[types.DefineToolchainFile])

	cfg.Defines = map[string]string{types.DefineToolchainFile: "/custom.cmake"}
	got = WithToolchain(cfg, engine)
	assert.Equal(t, "/custom.cmake", got.Defines[types.DefineToolchainFile])
}

func TestBuildCommand(t *testing.T) {
	synth := CommandSynthesizer{GOOS: "linux"}
	tests := []struct {
		name  string
		cfg   types.BuildConfig
		cmake string
		want  []string
	}{
		{
			name: "target and configuration",
			cfg:  types.BuildConfig{BuildDirectory: "/b", Configuration: types.ConfigurationRelease, Target: "Package"},
			want: []string{"cmake", "--build", "/b", "--target", "Package", "--config", "Release"},
		},
		{
			name: "native tool arguments",
			cfg:  types.BuildConfig{BuildDirectory: "/b", Configuration: types.ConfigurationDebug, Args: []string{"-j8", "-k"}},
			want: []string{"cmake", "--build", "/b", "--config", "Debug", "--", "-j8", "-k"},
		},
		{
			name:  "explicit cmake",
			cfg:   types.BuildConfig{BuildDirectory: "/b", Configuration: types.ConfigurationDebug},
			cmake: "/engine/cmake.exe",
			want:  []string{"/engine/cmake.exe", "--build", "/b", "--config", "Debug"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := synth.BuildCommand(context.Background(), tt.cfg, tt.cmake)
			if diff := cmp.Diff(tt.want, cmd.Args); diff != "" {
				t.Fatalf("unexpected command (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIsPS4Cache(t *testing.T) {
	assert.True(t, IsPS4Cache(types.NewCMakeCacheFacts("", map[string]string{"YI_PLATFORM": "PS4"})))
	assert.False(t, IsPS4Cache(types.NewCMakeCacheFacts("", map[string]string{"YI_PLATFORM": "Linux"})))
	assert.False(t, IsPS4Cache(types.NewCMakeCacheFacts("", nil)))
}

func TestExternalCommandString(t *testing.T) {
	cmd := CommandSynthesizer{GOOS: "linux"}.BuildCommand(context.Background(), types.BuildConfig{
		BuildDirectory: "/my build",
		Configuration:  types.ConfigurationDebug,
	}, "")
	require.Equal(t, `cmake --build "/my build" --config Debug`, cmd.String())
}
