package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"youi-build/internal/ports"
	"youi-build/internal/shared"
)

const (
	engineConfigMarker = "YouiEngineConfig.cmake"
	engineDependency   = "@youi/react-native-youi"
	engineParentLevels = 4
)

type EngineLocatorAdapter struct {
	InstallDir string
	Manifest   ports.DependencyManifestPort
}

func NewEngineLocatorAdapter(installDir string, manifest ports.DependencyManifestPort) EngineLocatorAdapter {
	return EngineLocatorAdapter{InstallDir: installDir, Manifest: manifest}
}

// DefaultEngineInstallDir is where the youi-tv installer places engine versions.
func DefaultEngineInstallDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "youiengine"
	}
	return filepath.Join(home, "youiengine")
}

// Locate returns the first candidate holding the engine config file, or the
// core project file found when running from inside an engine source checkout.
func (a EngineLocatorAdapter) Locate(candidates []string) (string, bool) {
	for _, dir := range candidates {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if !shared.IsFile(filepath.Join(dir, engineConfigMarker)) && !shared.IsFile(filepath.Join(dir, "core", "CMakeLists.txt")) {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return filepath.Clean(dir), true
		}
		return abs, true
	}
	return "", false
}

func (a EngineLocatorAdapter) Resolve(ctx context.Context, sourceDir string, hint string) (string, error) {
	logger := log.Ctx(ctx)
	if dir, ok := a.Locate(LocalEngineCandidates(sourceDir)); ok {
		logger.Warn().Str("engine", dir).Msg("Found in engine directory. Will use this SDK, but please do out of SDK build!")
		return dir, nil
	}

	if hint = strings.TrimSpace(hint); hint != "" {
		if dir, ok := a.Locate([]string{filepath.Join(a.InstallDir, hint), hint}); ok {
			logger.Info().Str("engine", dir).Msg("found engine directory")
			return dir, nil
		}
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("passed youi_version %s, but could not find a valid You.i Engine install. "+
				"Ensure that you have that version installed in %s, or the provided path is correct", hint, a.InstallDir))
	}

	if a.Manifest != nil {
		dir, handled, err := a.resolveFromManifest(ctx, filepath.Join(sourceDir, "..", "package.json"))
		if handled || err != nil {
			return dir, err
		}
	}

	entries, err := os.ReadDir(a.InstallDir)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(missingEngineMessage).
			WithCause(err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	candidates := make([]string, 0, len(names))
	for _, name := range SortEngineVersions(names) {
		candidates = append(candidates, filepath.Join(a.InstallDir, name))
	}
	if dir, ok := a.Locate(candidates); ok {
		logger.Debug().Str("engine", dir).Msg("using newest installed engine")
		return dir, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(missingEngineMessage)
}

const missingEngineMessage = "could not locate an installation of You.i Engine. Please install via the youi-tv " +
	"command line app, and try again, or pass the path to the installed SDK with the --youi_version option"

func (a EngineLocatorAdapter) resolveFromManifest(ctx context.Context, manifestPath string) (string, bool, error) {
	version, found, err := a.Manifest.EngineVersion(manifestPath)
	if err != nil {
		return "", true, err
	}
	if !found {
		return "", false, nil
	}
	if version == "" {
		return "", true, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("found package.json, but could not find the %s dependency. Ensure that you have upgraded "+
				"your application to the latest You.i Engine version, or force an engine with --youi_version. "+
				"Install the latest version with: youi-tv install", engineDependency))
	}
	candidates := []string{filepath.Join(a.InstallDir, version)}
	if isVersionRange(version) {
		candidates = a.installedMatching(version)
	}
	if dir, ok := a.Locate(candidates); ok {
		log.Ctx(ctx).Info().Str("engine", dir).Str("version", version).Msg("found engine directory based on version from package.json")
		return dir, true, nil
	}
	return "", true, errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("parsed %s version %s, but could not find a valid You.i Engine install in %s. "+
			"Install the required version with: youi-tv install %s", engineDependency, version, a.InstallDir, version))
}

// installedMatching lists installed versions satisfying an npm-style range, newest first.
func (a EngineLocatorAdapter) installedMatching(constraint string) []string {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil
	}
	entries, err := os.ReadDir(a.InstallDir)
	if err != nil {
		return nil
	}
	type installed struct {
		name    string
		version *semver.Version
	}
	var matches []installed
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := semver.NewVersion(entry.Name())
		if err != nil || !c.Check(v) {
			continue
		}
		matches = append(matches, installed{name: entry.Name(), version: v})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].version.GreaterThan(matches[j].version)
	})
	dirs := make([]string, 0, len(matches))
	for _, m := range matches {
		dirs = append(dirs, filepath.Join(a.InstallDir, m.name))
	}
	return dirs
}

// LocalEngineCandidates lists sourceDir followed by its parents, nearest first.
func LocalEngineCandidates(sourceDir string) []string {
	candidates := []string{filepath.Clean(sourceDir)}
	current := sourceDir
	for i := 0; i < engineParentLevels; i++ {
		current = filepath.Join(current, "..")
		candidates = append(candidates, current)
	}
	return candidates
}

// SortEngineVersions keeps the names that parse as versions, newest first.
func SortEngineVersions(names []string) []string {
	type parsed struct {
		name    string
		version pep440.Version
	}
	var versions []parsed
	for _, name := range names {
		v, err := pep440.Parse(name)
		if err != nil {
			continue
		}
		versions = append(versions, parsed{name: name, version: v})
	}
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].version.Compare(versions[j].version) > 0
	})
	result := make([]string, 0, len(versions))
	for _, v := range versions {
		result = append(result, v.name)
	}
	return result
}

func isVersionRange(version string) bool {
	return strings.ContainsAny(version, "^~<>=*| ") || strings.Contains(version, ".x")
}

var _ ports.EngineLocatorPort = EngineLocatorAdapter{}
