package types

import "strings"

type Platform string

const (
	PlatformAndroid   Platform = "Android"
	PlatformIOS       Platform = "Ios"
	PlatformLinux     Platform = "Linux"
	PlatformOSX       Platform = "Osx"
	PlatformPS4       Platform = "Ps4"
	PlatformRoku2     Platform = "Roku2"
	PlatformRoku4     Platform = "Roku4"
	PlatformTizenNaCl Platform = "Tizen-Nacl"
	PlatformTvOS      Platform = "Tvos"
	PlatformUWP       Platform = "Uwp"
	PlatformVS2017    Platform = "Vs2017"
)

// Platforms lists the supported platforms in the order they are shown in usage text.
var Platforms = []Platform{
	PlatformAndroid,
	PlatformIOS,
	PlatformLinux,
	PlatformOSX,
	PlatformPS4,
	PlatformRoku2,
	PlatformRoku4,
	PlatformTizenNaCl,
	PlatformTvOS,
	PlatformUWP,
	PlatformVS2017,
}

// DirName is the lower-case form used for build directories and bundler arguments.
func (p Platform) DirName() string {
	return strings.ToLower(string(p))
}

type Configuration string

const (
	ConfigurationDebug   Configuration = "Debug"
	ConfigurationRelease Configuration = "Release"
)

var Configurations = []Configuration{ConfigurationDebug, ConfigurationRelease}

// AppleOS is the SDK suffix Xcode appends to per-configuration product folders.
type AppleOS string

const (
	AppleOSIPhone  AppleOS = "iphoneos"
	AppleOSAppleTV AppleOS = "appletvos"
)
