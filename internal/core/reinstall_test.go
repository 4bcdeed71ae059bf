package core

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youi-build/internal/types"
)

func TestAndroidReinstallSteps(t *testing.T) {
	synth := CommandSynthesizer{GOOS: "linux"}
	steps := synth.AndroidReinstallSteps("/b/project", types.ConfigurationRelease, types.PackageIdentity{
		Flavor:         "paid",
		UninstallFirst: true,
		Start:          true,
	})
	require.Len(t, steps, 3)
	assert.Equal(t, []string{"./gradlew", "uninstallPaidRelease"}, steps[0].Args)
	assert.Equal(t, []string{"./gradlew", "installPaidRelease"}, steps[1].Args)
	assert.Equal(t, []string{"./gradlew", "startApplication"}, steps[2].Args)

	steps = synth.AndroidReinstallSteps("/b/project", types.ConfigurationDebug, types.PackageIdentity{})
	require.Len(t, steps, 1)
	assert.Equal(t, "gradle installDebug", steps[0].Step)
}

func TestAppleHelpers(t *testing.T) {
	appleOS, ok := AppleOSForPlatform("IOS")
	require.True(t, ok)
	assert.Equal(t, types.AppleOSIPhone, appleOS)
	appleOS, ok = AppleOSForPlatform("tvos")
	require.True(t, ok)
	assert.Equal(t, types.AppleOSAppleTV, appleOS)
	_, ok = AppleOSForPlatform("Osx")
	assert.False(t, ok)

	assert.Equal(t, filepath.Join("/b", "Release-appletvos", "App.app"), AppBundlePath("/b", types.ConfigurationRelease, types.AppleOSAppleTV, "App"))
	assert.Equal(t, []string{"ios-deploy", "--uninstall_only", "-1", "tv.youi.app"}, IOSDeployUninstall("tv.youi.app").Args)
	assert.Equal(t, []string{"ios-deploy", "--bundle", "/b/App.app"}, IOSDeployInstall("/b/App.app", false).Args)
	assert.True(t, HasConnectedAppleDevice("[....] Found 1234 (N71AP, iPhone 6s)"))
	assert.False(t, HasConnectedAppleDevice("[....] Waiting up to 5 seconds for iOS device to be connected"))
}

func TestParseSDBDevices(t *testing.T) {
	output := "List of devices attached \r\n" +
		"emulator-26101          device          t-1111-1\r\n" +
		"192.168.1.20:26101      device          UN55\r\n"
	assert.Equal(t, []string{"emulator-26101", "192.168.1.20:26101"}, ParseSDBDevices(output))
	assert.Empty(t, ParseSDBDevices("List of devices attached\n"))
	assert.Empty(t, ParseSDBDevices("emulator-26101          device\nt-1111-1\n"))
}

func TestValidateTizenPackageName(t *testing.T) {
	assert.NoError(t, ValidateTizenPackageName("FmHXPQSBwZ.sampleapp"))
	for _, name := range []string{"sampleapp", "a.b.c", "Fm-HX.app", ".app", ""} {
		assert.Error(t, ValidateTizenPackageName(name), name)
	}
}

func TestTizenCommands(t *testing.T) {
	assert.Equal(t, filepath.Join("/b", "App-Debug@Debug.wgt"), TizenWGTPath("/b", "App", types.ConfigurationDebug))
	assert.Equal(t, []string{"tizen", "install", "-n", "/b/App.wgt", "-s", "emu"}, TizenInstall("tizen", "/b/App.wgt", "emu").Args)
	assert.Equal(t, []string{"tizen", "uninstall", "-p", "A.b", "-s", "emu"}, TizenUninstall("tizen", "A.b", "emu").Args)
	assert.Equal(t, []string{"tizen", "run", "-p", "A.b", "-s", "emu"}, TizenRun("tizen", "A.b", "emu").Args)
	assert.Equal(t, []string{"sdb", "devices"}, SDBDevices("sdb").Args)
}
