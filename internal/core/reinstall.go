package core

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"youi-build/internal/types"
)

// GradleVariant is the task suffix for a flavor/configuration pair, e.g. PaidRelease.
func GradleVariant(flavor string, config types.Configuration) string {
	return Capitalize(strings.TrimSpace(flavor)) + string(config)
}

// AndroidReinstallSteps lists the Gradle tasks in execution order.
func (s CommandSynthesizer) AndroidReinstallSteps(projectDir string, config types.Configuration, pkg types.PackageIdentity) []types.ExternalCommand {
	variant := GradleVariant(pkg.Flavor, config)
	var steps []types.ExternalCommand
	if pkg.UninstallFirst {
		steps = append(steps, s.GradleTask(projectDir, "uninstall"+variant))
	}
	steps = append(steps, s.GradleTask(projectDir, "install"+variant))
	if pkg.Start {
		steps = append(steps, s.GradleTask(projectDir, "startApplication"))
	}
	return steps
}

// AppleOSForPlatform maps the YI_PLATFORM cache value of an Apple device build.
func AppleOSForPlatform(platform string) (types.AppleOS, bool) {
	switch {
	case strings.EqualFold(platform, string(types.PlatformIOS)):
		return types.AppleOSIPhone, true
	case strings.EqualFold(platform, string(types.PlatformTvOS)):
		return types.AppleOSAppleTV, true
	}
	return "", false
}

// AppBundlePath is where Xcode places the .app for a configuration and SDK.
func AppBundlePath(buildDir string, config types.Configuration, appleOS types.AppleOS, appName string) string {
	return filepath.Join(buildDir, fmt.Sprintf("%s-%s", config, appleOS), appName+".app")
}

const iosDeploy = "ios-deploy"

func IOSDeployVersion() types.ExternalCommand {
	return types.ExternalCommand{Step: "ios-deploy version check", Args: []string{iosDeploy, "-V"}}
}

func IOSDeployBrewInstall() types.ExternalCommand {
	return types.ExternalCommand{Step: "ios-deploy installation", Args: []string{"brew", "install", iosDeploy}}
}

func IOSDeployDetect() types.ExternalCommand {
	return types.ExternalCommand{Step: "device detection", Args: []string{iosDeploy, "-c"}}
}

func IOSDeployUninstall(packageName string) types.ExternalCommand {
	return types.ExternalCommand{Step: "Uninstall", Args: []string{iosDeploy, "--uninstall_only", "-1", packageName}}
}

func IOSDeployInstall(bundlePath string, debug bool) types.ExternalCommand {
	args := []string{iosDeploy, "--bundle", bundlePath}
	if debug {
		args = append(args, "--debug")
	}
	return types.ExternalCommand{Step: "Install", Args: args}
}

// HasConnectedAppleDevice checks `ios-deploy -c` output for a detected device.
func HasConnectedAppleDevice(output string) bool {
	return strings.Contains(output, "Found")
}

// TizenWGTPath is the packaged widget produced by the Package target.
func TizenWGTPath(buildDir string, outputFilename string, config types.Configuration) string {
	return filepath.Join(buildDir, fmt.Sprintf("%s-%s@%s.wgt", outputFilename, config, config))
}

var sdbDeviceLine = regexp.MustCompile(`(?m)^(\S+)[ \t]+(\S+)[ \t]+(\S+)[ \t]*$`)

// ParseSDBDevices extracts serials from `sdb devices`, whose rows look like
// "emulator-26101          device          t-1111-1".
func ParseSDBDevices(output string) []string {
	var serials []string
	for _, match := range sdbDeviceLine.FindAllStringSubmatch(strings.ReplaceAll(output, "\r", ""), -1) {
		serials = append(serials, match[1])
	}
	return serials
}

var tizenPackagePattern = regexp.MustCompile(`^[A-Za-z0-9]+\.[A-Za-z0-9]+$`)

// ValidateTizenPackageName expects "<package id>.<app>", e.g. FmHXPQSBwZ.sampleapp.
func ValidateTizenPackageName(name string) error {
	if tizenPackagePattern.MatchString(name) {
		return nil
	}
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid package name %q specified for Tizen-NaCl. Expecting something of the form: 'FmHXPQSBwZ.sampleapp'", name))
}

func TizenUninstall(cli string, packageName string, device string) types.ExternalCommand {
	return types.ExternalCommand{Step: "Uninstall", Args: []string{cli, "uninstall", "-p", packageName, "-s", device}}
}

func TizenInstall(cli string, wgtPath string, device string) types.ExternalCommand {
	return types.ExternalCommand{Step: "Install", Args: []string{cli, "install", "-n", wgtPath, "-s", device}}
}

func TizenRun(cli string, packageName string, device string) types.ExternalCommand {
	return types.ExternalCommand{Step: "Launch", Args: []string{cli, "run", "-p", packageName, "-s", device}}
}

func SDBDevices(sdb string) types.ExternalCommand {
	return types.ExternalCommand{Step: "device listing", Args: []string{sdb, "devices"}}
}
