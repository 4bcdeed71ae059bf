package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"youi-build/internal/core"
	"youi-build/internal/types"
)

// Reinstall deploys a built application to a connected device. Android
// projects are driven through Gradle; everything else is rebuilt with CMake
// and dispatched on the YI_PLATFORM recorded in the build cache.
func (s Service) Reinstall(ctx context.Context, req ReinstallRequest) (ReinstallResult, error) {
	cfg, err := compileReinstallConfig(req)
	if err != nil {
		return ReinstallResult{}, err
	}
	buildDir := cfg.BuildDirectory

	if projectDir, ok := s.Synthesizer.GradleProject(buildDir); ok {
		return s.reinstallAndroid(ctx, projectDir, cfg)
	}

	if !s.Cache.HasCache(buildDir) {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("the specified build directory '%s' does not contain a generated CMake project. Run generate to create a project", buildDir))
	}
	if _, err := s.Build(ctx, BuildRequest{
		SourceDirectory: cfg.SourceDirectory,
		BuildDirectory:  buildDir,
		Configuration:   cfg.Configuration,
	}); err != nil {
		return ReinstallResult{}, err
	}

	facts, err := s.Cache.ReadCache(buildDir)
	if err != nil {
		return ReinstallResult{}, err
	}
	platform, ok := facts.Get(types.CacheKeyPlatform)
	if !ok || platform == "" {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("YI_PLATFORM variable not found in CMakeCache. Was a platform specified when generating?")
	}
	log.Ctx(ctx).Debug().Str("platform", platform).Msg("dispatching reinstall")

	if appleOS, ok := core.AppleOSForPlatform(platform); ok {
		return s.reinstallApple(ctx, cfg, facts, appleOS)
	}
	if strings.EqualFold(platform, string(types.PlatformTizenNaCl)) {
		return s.reinstallTizen(ctx, cfg, facts)
	}
	return ReinstallResult{}, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("platform %s is not supported; only iOS, tvOS, Tizen-NaCl and Android can be reinstalled", platform))
}

func (s Service) reinstallAndroid(ctx context.Context, projectDir string, cfg types.ReinstallConfig) (ReinstallResult, error) {
	for _, step := range s.Synthesizer.AndroidReinstallSteps(projectDir, cfg.Configuration, cfg.Package) {
		if err := s.Runner.Run(ctx, step); err != nil {
			return ReinstallResult{}, err
		}
	}
	return ReinstallResult{Platform: types.PlatformAndroid}, nil
}

func compileReinstallConfig(req ReinstallRequest) (types.ReinstallConfig, error) {
	buildDir, err := requireBuildDirectory(req.BuildDirectory, "Make sure you run generate first.")
	if err != nil {
		return types.ReinstallConfig{}, err
	}
	config := req.Configuration
	if config == "" {
		config = types.ConfigurationDebug
	}
	return types.ReinstallConfig{
		SourceDirectory: req.SourceDirectory,
		BuildDirectory:  buildDir,
		Configuration:   config,
		Package:         req.Package,
		TizenSDKHome:    strings.TrimSpace(req.TizenSDKHome),
	}, nil
}
