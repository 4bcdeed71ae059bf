package core

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youi-build/internal/types"
	"youi-build/tests/testutil"
)

func TestCompileGenerateConfigDefaults(t *testing.T) {
	source := t.TempDir()
	probe := testutil.StaticProbe{"ninja": "/usr/bin/ninja"}

	tests := []struct {
		name     string
		input    GenerateInput
		wantGen  string
		wantDir  string
		wantDefs map[string]string
	}{
		{
			name:     "android",
			input:    GenerateInput{Platform: types.PlatformAndroid},
			wantGen:  GeneratorAndroidStudio,
			wantDir:  filepath.Join(source, "build", "android"),
			wantDefs: map[string]string{},
		},
		{
			name:     "linux gets a debug build type",
			input:    GenerateInput{Platform: types.PlatformLinux},
			wantGen:  GeneratorUnixMakefiles,
			wantDir:  filepath.Join(source, "build", "linux", "Debug"),
			wantDefs: map[string]string{"CMAKE_BUILD_TYPE": "Debug"},
		},
		{
			name:     "xcode keeps one folder for every configuration",
			input:    GenerateInput{Platform: types.PlatformIOS, Configuration: types.ConfigurationRelease},
			wantGen:  GeneratorXcode,
			wantDir:  filepath.Join(source, "build", "ios"),
			wantDefs: map[string]string{"CMAKE_BUILD_TYPE": "Release"},
		},
		{
			name: "explicit define and url scheme",
			input: GenerateInput{
				Platform:  types.PlatformTizenNaCl,
				Defines:   map[string]string{"CMAKE_BUILD_TYPE": "Release", "YI_FOO": "on"},
				URLScheme: "myapp",
			},
			wantGen: GeneratorEclipseNinja,
			wantDir: filepath.Join(source, "build", "tizen-nacl", "Release"),
			wantDefs: map[string]string{
				"CMAKE_BUILD_TYPE":     "Release",
				"YI_FOO":               "on",
				"YI_BUNDLE_URL_SCHEME": "myapp",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.SourceDirectory = source
			cfg, err := CompileGenerateConfig(context.Background(), tt.input, probe)
			require.NoError(t, err)
			assert.Equal(t, tt.wantGen, cfg.Generator)
			assert.Equal(t, tt.wantDir, cfg.BuildDirectory)
			if diff := cmp.Diff(tt.wantDefs, cfg.Defines); diff != "" {
				t.Fatalf("unexpected defines (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCompileGenerateConfigExplicitBuildDirectory(t *testing.T) {
	source := t.TempDir()
	buildDir := filepath.Join(t.TempDir(), "out")
	cfg, err := CompileGenerateConfig(context.Background(), GenerateInput{
		Platform:        types.PlatformLinux,
		SourceDirectory: source,
		BuildDirectory:  buildDir,
		Generator:       "Ninja",
	}, testutil.StaticProbe{})
	require.NoError(t, err)
	assert.Equal(t, buildDir, cfg.BuildDirectory)
	assert.Equal(t, "Ninja", cfg.Generator)
}

func TestCompileGenerateConfigBundling(t *testing.T) {
	source := t.TempDir()
	cfg, err := CompileGenerateConfig(context.Background(), GenerateInput{
		Platform:        types.PlatformLinux,
		SourceDirectory: source,
		Inline:          true,
		File:            "index.youi.js",
	}, testutil.StaticProbe{})
	require.NoError(t, err)

	generated := filepath.Join(source, "build", "linux", "Debug", "Staging", "generated")
	assert.True(t, cfg.JSBundle.Local)
	assert.Equal(t, filepath.Dir(source), cfg.JSBundle.WorkingDirectory)
	assert.Equal(t, filepath.Join(generated, "jsbundles", "InlineJSBundleGenerated"), cfg.JSBundle.OutputDirectory)
	assert.Equal(t, "ON", cfg.Defines[types.DefineLocalJS])
	assert.Equal(t, "ON", cfg.Defines[types.DefineLocalJSInline])
	assert.Equal(t, filepath.Join(generated, "bundled_assets"), cfg.Defines[types.DefineBundledAssets])
}

func TestCompileGenerateConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   GenerateInput
		message string
	}{
		{
			name:    "missing platform",
			input:   GenerateInput{},
			message: "missing argument: --platform",
		},
		{
			name:    "dev without local",
			input:   GenerateInput{Platform: types.PlatformLinux, Dev: true},
			message: "the --dev option requires",
		},
		{
			name:    "iterate without local",
			input:   GenerateInput{Platform: types.PlatformLinux, Iterate: true},
			message: "the --iterate option requires",
		},
		{
			name:    "local without entry",
			input:   GenerateInput{Platform: types.PlatformLinux, Local: true},
			message: "exactly one of the --file or --directory",
		},
		{
			name:    "local with both entries",
			input:   GenerateInput{Platform: types.PlatformLinux, Local: true, File: "a.js", Directory: "src"},
			message: "exactly one of the --file or --directory",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.SourceDirectory = t.TempDir()
			_, err := CompileGenerateConfig(context.Background(), tt.input, testutil.StaticProbe{})
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
