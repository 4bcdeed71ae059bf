package core

import (
	"fmt"
	"regexp"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"youi-build/internal/ports"
	"youi-build/internal/types"
)

const (
	GeneratorAndroidStudio = "AndroidStudio"
	GeneratorXcode         = "Xcode"
	GeneratorVS2017        = "Visual Studio 15 Win64"
	GeneratorVS2015        = "Visual Studio 14"
	GeneratorUnixMakefiles = "Unix Makefiles"
	GeneratorNinja         = "Ninja"
	GeneratorEclipseNinja  = "Eclipse CDT4 - Ninja"
	GeneratorEclipseMake   = "Eclipse CDT4 - Unix Makefiles"
)

var staticGenerators = map[types.Platform]string{
	types.PlatformAndroid: GeneratorAndroidStudio,
	types.PlatformOSX:     GeneratorXcode,
	types.PlatformIOS:     GeneratorXcode,
	types.PlatformTvOS:    GeneratorXcode,
	types.PlatformUWP:     GeneratorVS2017,
	types.PlatformVS2017:  GeneratorVS2017,
	types.PlatformPS4:     GeneratorVS2015,
	types.PlatformLinux:   GeneratorUnixMakefiles,
}

// probedGenerators maps platforms whose default depends on the host: the
// first entry is used when ninja is installed, the second when only make is.
var probedGenerators = map[types.Platform][2]string{
	types.PlatformTizenNaCl: {GeneratorEclipseNinja, GeneratorEclipseMake},
	types.PlatformRoku2:     {GeneratorNinja, GeneratorUnixMakefiles},
	types.PlatformRoku4:     {GeneratorNinja, GeneratorUnixMakefiles},
}

func DefaultGenerator(platform types.Platform, probe ports.ToolProbePort) (string, error) {
	if generator, ok := staticGenerators[platform]; ok {
		return generator, nil
	}
	choices, ok := probedGenerators[platform]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("no default generator for platform %s", platform))
	}
	if _, err := probe.LookPath("ninja"); err == nil {
		return choices[0], nil
	}
	if _, err := probe.LookPath("make"); err == nil {
		return choices[1], nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("could not find ninja or unix make. One of these must be installed to generate for %s", platform))
}

var (
	multiConfigGenerator   = regexp.MustCompile(`Visual Studio|Xcode|AndroidStudio`)
	ideOwnedBuildGenerator = regexp.MustCompile(`Visual Studio|Xcode`)
)

// IsMultiConfigGenerator reports whether the generator picks the configuration at build time.
func IsMultiConfigGenerator(generator string) bool {
	return multiConfigGenerator.MatchString(generator)
}

// usesConfigSubdirectory reports whether default build directories get a
// per-configuration folder.
func usesConfigSubdirectory(generator string) bool {
	return !ideOwnedBuildGenerator.MatchString(generator)
}
