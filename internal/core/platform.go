package core

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"youi-build/internal/types"
)

var platformAliases = map[string]types.Platform{
	"macos": types.PlatformOSX,
}

// ParsePlatform matches value case-insensitively against the supported platforms.
func ParsePlatform(value string) (types.Platform, error) {
	trimmed := strings.TrimSpace(value)
	for _, platform := range types.Platforms {
		if strings.EqualFold(trimmed, string(platform)) {
			return platform, nil
		}
	}
	if platform, ok := platformAliases[strings.ToLower(trimmed)]; ok {
		return platform, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%q is an invalid platform", value))
}

func ParseConfiguration(value string) (types.Configuration, error) {
	trimmed := strings.TrimSpace(value)
	for _, config := range types.Configurations {
		if strings.EqualFold(trimmed, string(config)) {
			return config, nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%q is an invalid configuration type", value))
}

var defineSeparator = regexp.MustCompile(`\s*=\s*`)

// ParseDefine splits NAME=VALUE into exactly two non-empty parts.
func ParseDefine(pair string) (string, string, error) {
	parts := defineSeparator.Split(strings.TrimSpace(pair), -1)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid format for -d: %s", pair))
	}
	return parts[0], parts[1], nil
}

// ToolchainName turns a platform into the suffix of its Toolchain-<Name>.cmake file.
func ToolchainName(platform types.Platform) string {
	var name strings.Builder
	for _, segment := range strings.Split(string(platform), "-") {
		name.WriteString(Capitalize(segment))
	}
	return name.String()
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(value string) string {
	if value == "" {
		return value
	}
	lower := strings.ToLower(value)
	return strings.ToUpper(lower[:1]) + lower[1:]
}
