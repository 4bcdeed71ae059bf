package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"youi-build/internal/core"
	"youi-build/internal/shared"
	"youi-build/internal/types"
)

func (s Service) reinstallTizen(ctx context.Context, cfg types.ReinstallConfig, facts types.CMakeCacheFacts) (ReinstallResult, error) {
	logger := log.Ctx(ctx)
	sdkHome := strings.TrimSpace(cfg.TizenSDKHome)
	if sdkHome == "" {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("TIZEN_SDK_HOME environment variable not found. Ensure that TIZEN_SDK_HOME is set to the path to Tizen Studio")
	}
	tizenCLI, ok := firstFile(filepath.Join(sdkHome, "tools", "ide", "bin", "tizen"), filepath.Join(sdkHome, "tools", "ide", "bin", "tizen.bat"))
	if !ok {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("Tizen Studio CLI command not found. Ensure that Tizen Studio is installed at '%s' and that "+
				"the Native and Web CLI have been installed via the Tizen Studio Package Manager", sdkHome))
	}
	sdb, ok := firstFile(filepath.Join(sdkHome, "tools", "sdb"), filepath.Join(sdkHome, "tools", "sdb.exe"))
	if !ok {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("Tizen Studio sdb command not found. Ensure that Tizen Studio is installed at '%s'", sdkHome))
	}

	projectName, _ := facts.Get(types.CacheKeyProjectName)
	outputFilename, ok := facts.Get(types.CacheKeyOutputFilename)
	if !ok || outputFilename == "" {
		outputFilename = projectName
	}
	if outputFilename == "" {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("could not obtain CMAKE_PROJECT_NAME from CMakeCache. Ensure the project is generated properly")
	}
	wgtPath := core.TizenWGTPath(cfg.BuildDirectory, outputFilename, cfg.Configuration)
	if !shared.IsFile(wgtPath) {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("could not find packaged wgt at expected location '%s'. Did the build and package succeed?", wgtPath))
	}

	packageName, err := tizenPackageName(cfg.Package.PackageName, projectName, facts)
	if err != nil {
		return ReinstallResult{}, err
	}

	listing, err := s.Runner.Output(ctx, core.SDBDevices(sdb))
	if err != nil {
		return ReinstallResult{}, err
	}
	devices := core.ParseSDBDevices(listing)
	if len(devices) == 0 {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("no devices connected. Use '%s connect <ip address>' to connect a device", sdb))
	}
	device := strings.TrimSpace(cfg.Package.Device)
	if device == "" {
		device = devices[0]
	}
	if !slices.Contains(devices, device) {
		return ReinstallResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("specified target device %s is not connected. Use '%s connect <ip address>' to connect a device", device, sdb))
	}

	result := ReinstallResult{Platform: types.PlatformTizenNaCl, PackageName: packageName, Device: device}
	if cfg.Package.UninstallFirst {
		logger.Info().Str("package", packageName).Str("device", device).Msg("uninstalling")
		if err := s.Runner.Run(ctx, core.TizenUninstall(tizenCLI, packageName, device)); err != nil {
			logger.Warn().Err(err).Msg("uninstall failed, continuing with install")
		}
	}

	logger.Info().Str("package", packageName).Str("device", device).Msg("installing")
	installErr := s.Runner.Run(ctx, core.TizenInstall(tizenCLI, wgtPath, device))
	if !cfg.Package.Start {
		return result, installErr
	}
	if installErr != nil {
		// The tizen CLI can report failure for an install that succeeded, so launch anyway.
		logger.Warn().Err(installErr).Msg("install reported failure, attempting launch regardless")
	}
	logger.Info().Str("package", packageName).Str("device", device).Msg("launching")
	if err := s.Runner.Run(ctx, core.TizenRun(tizenCLI, packageName, device)); err != nil {
		return result, err
	}
	return result, nil
}

func tizenPackageName(explicit string, projectName string, facts types.CMakeCacheFacts) (string, error) {
	name := strings.TrimSpace(explicit)
	if name == "" {
		if projectName == "" {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("could not obtain CMAKE_PROJECT_NAME from CMakeCache. Ensure project is generated properly or specify the --package_name argument")
		}
		packageID, ok := facts.Get(types.CacheKeyPackageID)
		if !ok || packageID == "" {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("could not obtain YI_PACKAGE_ID from CMakeCache. Ensure YI_PACKAGE_ID was specified in CMake or specify the --package_name argument")
		}
		name = packageID + "." + strings.ToLower(projectName)
	}
	if err := core.ValidateTizenPackageName(name); err != nil {
		return "", err
	}
	return name, nil
}

func firstFile(paths ...string) (string, bool) {
	for _, path := range paths {
		if shared.IsFile(path) {
			return path, true
		}
	}
	return "", false
}
