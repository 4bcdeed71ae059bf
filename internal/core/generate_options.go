package core

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"youi-build/internal/ports"
	"youi-build/internal/shared"
	"youi-build/internal/types"
)

// GenerateInput is the raw, flag-level view of a generate invocation.
type GenerateInput struct {
	Platform        types.Platform
	Configuration   types.Configuration
	Generator       string
	SourceDirectory string
	BuildDirectory  string
	Defines         map[string]string
	URLScheme       string
	EngineHint      string
	Local           bool
	Inline          bool
	Dev             bool
	Minify          bool
	Iterate         bool
	File            string
	Directory       string
}

// CompileGenerateConfig validates input and fills in every derived value, so
// that nothing downstream has to apply defaults.
func CompileGenerateConfig(ctx context.Context, input GenerateInput, probe ports.ToolProbePort) (types.GenerateConfig, error) {
	if input.Platform == "" {
		return types.GenerateConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("missing argument: --platform")
	}
	sourceDir, err := shared.AbsPath(input.SourceDirectory)
	if err != nil {
		return types.GenerateConfig{}, err
	}

	cfg := types.GenerateConfig{
		Platform:        input.Platform,
		Generator:       strings.TrimSpace(input.Generator),
		SourceDirectory: sourceDir,
		Defines:         map[string]string{},
		URLScheme:       strings.TrimSpace(input.URLScheme),
		EngineHint:      strings.TrimSpace(input.EngineHint),
	}
	for key, value := range input.Defines {
		cfg.Defines[key] = value
	}
	if input.Configuration != "" {
		cfg.Defines[types.DefineBuildType] = string(input.Configuration)
	}

	if cfg.Generator == "" {
		generator, err := DefaultGenerator(cfg.Platform, probe)
		if err != nil {
			return types.GenerateConfig{}, err
		}
		cfg.Generator = generator
	}
	if !IsMultiConfigGenerator(cfg.Generator) {
		if _, ok := cfg.Defines[types.DefineBuildType]; !ok {
			cfg.Defines[types.DefineBuildType] = string(types.ConfigurationDebug)
		}
	}
	if cfg.URLScheme != "" {
		cfg.Defines[types.DefineURLScheme] = cfg.URLScheme
	}

	cfg.BuildDirectory, err = generateBuildDirectory(input.BuildDirectory, cfg)
	if err != nil {
		return types.GenerateConfig{}, err
	}

	bundle, err := compileBundleOptions(input, cfg)
	if err != nil {
		return types.GenerateConfig{}, err
	}
	cfg.JSBundle = bundle
	if bundle.Inline {
		cfg.Defines[types.DefineLocalJSInline] = "ON"
	}
	if bundle.Local {
		cfg.Defines[types.DefineLocalJS] = "ON"
		cfg.Defines[types.DefineBundledAssets] = bundle.AssetsDirectory
	}

	log.Ctx(ctx).Debug().
		Str("platform", string(cfg.Platform)).
		Str("generator", cfg.Generator).
		Str("build_directory", cfg.BuildDirectory).
		Msg("generate options compiled")
	return cfg, nil
}

func generateBuildDirectory(explicit string, cfg types.GenerateConfig) (string, error) {
	if strings.TrimSpace(explicit) != "" {
		return shared.AbsPath(explicit)
	}
	return DefaultBuildDirectory(cfg), nil
}

// DefaultBuildDirectory is <source>/build/<platform>, plus a configuration
// folder for generators that do not manage configurations themselves.
func DefaultBuildDirectory(cfg types.GenerateConfig) string {
	dir := filepath.Join(cfg.SourceDirectory, "build", cfg.Platform.DirName())
	if buildType := cfg.BuildType(); buildType != "" && usesConfigSubdirectory(cfg.Generator) {
		dir = filepath.Join(dir, buildType)
	}
	return dir
}

func compileBundleOptions(input GenerateInput, cfg types.GenerateConfig) (types.JSBundleOptions, error) {
	opts := types.JSBundleOptions{
		Local:          input.Local || input.Inline,
		Inline:         input.Inline,
		Dev:            input.Dev,
		Minify:         input.Minify,
		Iterate:        input.Iterate,
		EntryFile:      strings.TrimSpace(input.File),
		EntryDirectory: strings.TrimSpace(input.Directory),
	}
	if !opts.Local {
		flags := []struct {
			name string
			set  bool
		}{{"--dev", opts.Dev}, {"--minify", opts.Minify}, {"--iterate", opts.Iterate}}
		for _, flag := range flags {
			if flag.set {
				return types.JSBundleOptions{}, errbuilder.New().
					WithCode(errbuilder.CodeInvalidArgument).
					WithMsg(fmt.Sprintf("the %s option requires either the '--local' or '--inline' option to be set", flag.name))
			}
		}
		return opts, nil
	}
	if (opts.EntryFile == "") == (opts.EntryDirectory == "") {
		return types.JSBundleOptions{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("exactly one of the --file or --directory arguments is required to specify the file/directory to include within the JS bundle")
	}

	generated := filepath.Join(cfg.BuildDirectory, "Staging", "generated")
	opts.WorkingDirectory = filepath.Dir(cfg.SourceDirectory)
	opts.AssetsDirectory = filepath.Join(generated, "bundled_assets")
	opts.OutputDirectory = filepath.Join(generated, "jsbundles")
	if opts.Inline {
		opts.OutputDirectory = filepath.Join(opts.OutputDirectory, "InlineJSBundleGenerated")
	}
	return opts, nil
}
