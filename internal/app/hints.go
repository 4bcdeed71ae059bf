package app

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"youi-build/internal/core"
	"youi-build/internal/ports"
	"youi-build/internal/types"
)

// redundantFlag pairs a flag with the default that already produces its value.
type redundantFlag struct {
	FlagName string
	Default  string
}

// checkGenerateHints returns hints for generate flags whose explicit value is
// what the defaults would have produced anyway.
func checkGenerateHints(req GenerateRequest, cfg types.GenerateConfig, tools ports.ToolProbePort) []string {
	checks := []struct {
		hint      redundantFlag
		redundant bool
	}{
		{
			hint:      redundantFlag{"--generator", "the default generator for " + string(cfg.Platform)},
			redundant: strings.TrimSpace(req.Generator) != "" && matchesDefaultGenerator(req.Generator, cfg.Platform, tools),
		},
		{
			hint:      redundantFlag{"--build_directory", "the default build directory"},
			redundant: strings.TrimSpace(req.BuildDirectory) != "" && sameDir(req.BuildDirectory, core.DefaultBuildDirectory(cfg)),
		},
	}

	var hints []string
	for _, c := range checks {
		if c.redundant {
			hints = append(hints, fmt.Sprintf("hint: %s matches %s; you can omit the flag", c.hint.FlagName, c.hint.Default))
		}
	}
	return append(hints, buildTypeHints(req, cfg)...)
}

// buildTypeHints compares -d CMAKE_BUILD_TYPE with the value generate ends up using.
// --config wins over the define, so a differing define gets a warning.
func buildTypeHints(req GenerateRequest, cfg types.GenerateConfig) []string {
	define := strings.TrimSpace(req.Defines[types.DefineBuildType])
	if define == "" {
		return nil
	}
	flag := "-d " + types.DefineBuildType
	if req.Configuration != "" {
		if define != string(req.Configuration) {
			return []string{fmt.Sprintf("warning: --config %s overrides %s=%s", req.Configuration, flag, define)}
		}
		return []string{fmt.Sprintf("hint: %s matches --config; you can omit the flag", flag)}
	}
	if define == cfg.BuildType() && define == string(types.ConfigurationDebug) && !core.IsMultiConfigGenerator(cfg.Generator) {
		return []string{fmt.Sprintf("hint: %s matches the default build type for %s; you can omit the flag", flag, cfg.Generator)}
	}
	return nil
}

// checkBuildHints flags build arguments that only make sense for the CMake backend.
func checkBuildHints(req BuildRequest) []string {
	var hints []string
	if strings.EqualFold(strings.TrimSpace(req.Target), "ALL_BUILD") {
		hints = append(hints, "hint: --target ALL_BUILD matches the default CMake target; you can omit the flag")
	}
	return hints
}

func matchesDefaultGenerator(generator string, platform types.Platform, tools ports.ToolProbePort) bool {
	def, err := core.DefaultGenerator(platform, tools)
	return err == nil && strings.EqualFold(strings.TrimSpace(generator), def)
}

func sameDir(a string, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}

// emitHints writes hint messages to w.
func emitHints(w io.Writer, hints []string) {
	if w == nil {
		return
	}
	for _, h := range hints {
		fmt.Fprintln(w, h)
	}
}
