package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"youi-build/internal/core"
	"youi-build/internal/shared"
	"youi-build/internal/types"
)

func (s Service) reinstallApple(ctx context.Context, cfg types.ReinstallConfig, facts types.CMakeCacheFacts, appleOS types.AppleOS) (ReinstallResult, error) {
	logger := log.Ctx(ctx)
	platform := types.PlatformIOS
	if appleOS == types.AppleOSAppleTV {
		platform = types.PlatformTvOS
	}

	appName := strings.TrimSpace(cfg.Package.AppName)
	if appName == "" {
		appName = defaultAppName(cfg, facts)
	}
	packageName := strings.TrimSpace(cfg.Package.PackageName)
	if packageName == "" {
		packageName = "tv.youi." + strings.ToLower(appName)
	}

	bundlePath := core.AppBundlePath(cfg.BuildDirectory, cfg.Configuration, appleOS, appName)
	if !shared.IsDir(bundlePath) {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("the '%s.app' does not exist within '%s'. Check the location of the .app that you are trying "+
				"to deploy and make sure it has been built properly. If the project has been built out of source, "+
				"pass the application name using the '--appname' argument", appName, filepath.Dir(bundlePath)))
	}

	if _, err := s.Runner.Output(ctx, core.IOSDeployVersion()); err != nil {
		logger.Info().Msg("Installing the 'ios-deploy' tool with HomeBrew...")
		if err := s.Runner.Run(ctx, core.IOSDeployBrewInstall()); err != nil {
			return ReinstallResult{}, err
		}
	}

	output, err := s.Runner.Output(ctx, core.IOSDeployDetect())
	if err != nil || !core.HasConnectedAppleDevice(output) {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no devices connected")
	}

	if cfg.Package.UninstallFirst {
		logger.Info().Str("package", packageName).Msg("attempting to uninstall application from device")
		if err := s.Runner.Run(ctx, core.IOSDeployUninstall(packageName)); err != nil {
			return ReinstallResult{}, err
		}
	}
	if err := s.Runner.Run(ctx, core.IOSDeployInstall(bundlePath, cfg.Package.Start)); err != nil {
		return ReinstallResult{}, err
	}
	return ReinstallResult{Platform: platform, PackageName: packageName}, nil
}

// defaultAppName falls back to the CMake project name, then to the project folder name.
func defaultAppName(cfg types.ReinstallConfig, facts types.CMakeCacheFacts) string {
	if name, ok := facts.Get(types.CacheKeyProjectName); ok && name != "" {
		return name
	}
	source, err := shared.AbsPath(cfg.SourceDirectory)
	if err != nil {
		return "youi"
	}
	return filepath.Base(source)
}
