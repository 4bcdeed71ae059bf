package core

import (
	"context"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/rs/zerolog/log"

	"youi-build/internal/shared"
	"youi-build/internal/types"
)

const (
	cmakeProgram        = "cmake"
	androidProjectDir   = "project"
	androidGenerateStep = "YiGenerateAndroidStudioProject.cmake"
)

// CommandSynthesizer turns validated configs into external command lines.
type CommandSynthesizer struct {
	GOOS string
}

func NewCommandSynthesizer() CommandSynthesizer {
	return CommandSynthesizer{GOOS: runtime.GOOS}
}

func (s CommandSynthesizer) gradleWrapper() string {
	if s.GOOS == "windows" {
		return "gradlew.bat"
	}
	return "gradlew"
}

// GradleProject returns the Android Studio project folder inside buildDir when
// it holds a Gradle wrapper script.
func (s CommandSynthesizer) GradleProject(buildDir string) (string, bool) {
	projectDir := filepath.Join(buildDir, androidProjectDir)
	if !shared.IsFile(filepath.Join(projectDir, s.gradleWrapper())) {
		return "", false
	}
	return projectDir, true
}

// GradleTask runs one task through the project's wrapper from inside the project folder.
func (s CommandSynthesizer) GradleTask(projectDir string, task string) types.ExternalCommand {
	separator := "/"
	if s.GOOS == "windows" {
		separator = `\`
	}
	return types.ExternalCommand{
		Step:      "gradle " + task,
		Args:      []string{"." + separator + s.gradleWrapper(), task},
		Dir:       projectDir,
		ChangeDir: true,
	}
}

// GenerateCommand synthesizes project generation for cfg against the engine at engineDir.
func (s CommandSynthesizer) GenerateCommand(ctx context.Context, cfg types.GenerateConfig, engineDir string) types.ExternalCommand {
	assert.NotEmpty(ctx, string(cfg.Platform), "platform must be set before synthesis")
	assert.NotEmpty(ctx, cfg.BuildDirectory, "build directory must be set before synthesis")
	assert.NotEmpty(ctx, engineDir, "engine directory must be resolved before synthesis")

	var cmd types.ExternalCommand
	if cfg.Platform == types.PlatformAndroid {
		cmd = s.androidGenerateCommand(cfg, engineDir)
	} else {
		cmd = s.cmakeGenerateCommand(cfg, engineDir)
	}
	log.Ctx(ctx).Debug().Str("command", cmd.String()).Msg("generate command synthesized")
	return cmd
}

func (s CommandSynthesizer) androidGenerateCommand(cfg types.GenerateConfig, engineDir string) types.ExternalCommand {
	args := []string{cmakeProgram, "-D" + types.DefineOutputDirectory + "=" + cfg.BuildDirectory}
	args = append(args, defineArgs(cfg.Defines)...)
	args = append(args, "-P", filepath.Join(engineDir, "cmake", "Modules", androidGenerateStep))
	return types.ExternalCommand{Step: "Generation", Args: args}
}

func (s CommandSynthesizer) cmakeGenerateCommand(cfg types.GenerateConfig, engineDir string) types.ExternalCommand {
	program := cmakeProgram
	if cfg.Platform == types.PlatformPS4 {
		program = BundledCMake(engineDir)
	}
	args := []string{program, "-B" + cfg.BuildDirectory, "-H" + cfg.SourceDirectory}
	if cfg.Generator != "" {
		args = append(args, "-G", cfg.Generator)
	}
	args = append(args, defineArgs(cfg.Defines)...)
	return types.ExternalCommand{Step: "Generation", Args: args}
}

// WithToolchain adds CMAKE_TOOLCHAIN_FILE when the caller did not define one
// and a toolchain exists beside the project or, failing that, beside the engine.
func WithToolchain(cfg types.GenerateConfig, engineDir string) types.GenerateConfig {
	if cfg.Platform == types.PlatformAndroid {
		return cfg
	}
	if _, ok := cfg.Defines[types.DefineToolchainFile]; ok {
		return cfg
	}
	subpath := filepath.Join("cmake", "Toolchain", "Toolchain-"+ToolchainName(cfg.Platform)+".cmake")
	for _, root := range []string{cfg.SourceDirectory, engineDir} {
		candidate := filepath.Join(root, subpath)
		if shared.IsFile(candidate) {
			defines := make(map[string]string, len(cfg.Defines)+1)
			for key, value := range cfg.Defines {
				defines[key] = value
			}
			defines[types.DefineToolchainFile] = candidate
			cfg.Defines = defines
			return cfg
		}
	}
	return cfg
}

// BuildCommand synthesizes `cmake --build` for a generated CMake project.
func (s CommandSynthesizer) BuildCommand(ctx context.Context, cfg types.BuildConfig, cmakePath string) types.ExternalCommand {
	assert.NotEmpty(ctx, cfg.BuildDirectory, "build directory must be set before synthesis")
	if strings.TrimSpace(cmakePath) == "" {
		cmakePath = cmakeProgram
	}
	args := []string{cmakePath, "--build", cfg.BuildDirectory}
	if cfg.Target != "" {
		args = append(args, "--target", cfg.Target)
	}
	if cfg.Configuration != "" {
		args = append(args, "--config", string(cfg.Configuration))
	}
	if len(cfg.Args) > 0 {
		args = append(args, "--")
		args = append(args, cfg.Args...)
	}
	cmd := types.ExternalCommand{Step: "Build", Args: args}
	log.Ctx(ctx).Debug().Str("command", cmd.String()).Msg("build command synthesized")
	return cmd
}

// IsPS4Cache reports whether the cache was generated for PS4, which only the
// engine's bundled CMake understands.
func IsPS4Cache(facts types.CMakeCacheFacts) bool {
	platform, ok := facts.Get(types.CacheKeyPlatform)
	return ok && strings.EqualFold(platform, string(types.PlatformPS4))
}

func BundledCMake(engineDir string) string {
	return filepath.Join(engineDir, "tools", "build", "cmake", "bin", "cmake.exe")
}

func defineArgs(defines map[string]string) []string {
	args := make([]string, 0, len(defines))
	for _, key := range SortedDefines(defines) {
		args = append(args, "-D"+key+"="+defines[key])
	}
	return args
}

// SortedDefines returns the define names in the order they are passed to CMake.
func SortedDefines(defines map[string]string) []string {
	keys := make([]string, 0, len(defines))
	for key := range defines {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
