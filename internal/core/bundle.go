package core

import (
	"path/filepath"
	"strings"

	"youi-build/internal/types"
)

// BundleCommand invokes the engine's JS bundler for a local or inline bundle.
func BundleCommand(cfg types.GenerateConfig, engineDir string) types.ExternalCommand {
	opts := cfg.JSBundle
	args := []string{
		"ruby", filepath.Join(engineDir, "tools", "workflow", "bundlejs.rb"),
		"--working_directory", opts.WorkingDirectory,
		"--platform", cfg.Platform.DirName(),
	}
	if opts.EntryFile != "" {
		args = append(args, "--input_files", opts.EntryFile)
	} else {
		args = append(args, "--input_directories", opts.EntryDirectory)
	}
	if opts.Dev || strings.EqualFold(cfg.BuildType(), string(types.ConfigurationDebug)) {
		args = append(args, "--dev")
	}
	if opts.Minify || opts.Inline {
		args = append(args, "--minify")
	}
	if opts.Inline {
		args = append(args, "--inline")
	}
	args = append(args, "--output", opts.OutputDirectory, "--assets_dest", opts.AssetsDirectory)
	return types.ExternalCommand{Step: "JS bundling", Args: args}
}
