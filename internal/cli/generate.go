package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"youi-build/internal/app"
	"youi-build/internal/core"
	"youi-build/internal/types"
)

type generateOptions struct {
	Platform       types.Platform
	Generator      string
	BuildDirectory string
	Defines        map[string]string
	Configuration  types.Configuration
	URLScheme      string
	EngineVersion  string
	Dev            bool
	Minify         bool
	Local          bool
	Inline         bool
	Iterate        bool
	File           string
	Directory      string
	DryRun         bool
}

func newGenerateCommand() *cobra.Command {
	opts := generateOptions{Defines: map[string]string{}}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a native project for a target platform",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireArguments(cmd, args); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().VarP(platformValue{&opts.Platform}, "platform", "p", "Target platform ("+platformList()+")")
	cmd.Flags().StringVarP(&opts.Generator, "generator", "g", "", "CMake generator; defaults per platform")
	cmd.Flags().StringVarP(&opts.BuildDirectory, "build_directory", "b", "", "Build directory; defaults to build/<platform>")
	cmd.Flags().VarP(defineValue{opts.Defines}, "define", "d", "CMake cache entry NAME=VALUE (repeatable)")
	cmd.Flags().VarP(configurationValue{&opts.Configuration}, "config", "c", "Build configuration ("+configurationList()+")")
	cmd.Flags().StringVar(&opts.URLScheme, "url_scheme", "", "URL scheme the application registers")
	cmd.Flags().StringVar(&opts.EngineVersion, "youi_version", "", "Engine version or path to generate against")
	cmd.Flags().BoolVar(&opts.Dev, "dev", false, "Bundle JavaScript in development mode")
	cmd.Flags().BoolVar(&opts.Minify, "minify", false, "Minify the bundled JavaScript")
	cmd.Flags().BoolVar(&opts.Local, "local", false, "Bundle JavaScript locally into the application")
	cmd.Flags().BoolVar(&opts.Inline, "inline", false, "Inline the JavaScript bundle into the binary (implies --local)")
	cmd.Flags().BoolVar(&opts.Iterate, "iterate", false, "Keep the previous JavaScript bundle output")
	cmd.Flags().StringVar(&opts.File, "file", "", "JavaScript entry file for local bundling")
	cmd.Flags().StringVar(&opts.Directory, "directory", "", "JavaScript entry directory for local bundling")
	cmd.Flags().BoolVar(&opts.DryRun, "dry_run", false, "Print the commands without running them")

	_ = viper.BindPFlag("youi_version", cmd.Flags().Lookup("youi_version"))

	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, opts generateOptions) error {
	if opts.Platform == "" {
		return usageError("missing argument: --platform")
	}
	service := newAppService()
	plan, err := service.PlanGenerate(ctx, app.GenerateRequest{
		GenerateInput: core.GenerateInput{
			Platform:        opts.Platform,
			Configuration:   opts.Configuration,
			Generator:       opts.Generator,
			SourceDirectory: sourceDirectory(),
			BuildDirectory:  opts.BuildDirectory,
			Defines:         opts.Defines,
			URLScheme:       opts.URLScheme,
			EngineHint:      resolveString(cmd, opts.EngineVersion, "youi_version", "youi_version"),
			Local:           opts.Local,
			Inline:          opts.Inline,
			Dev:             opts.Dev,
			Minify:          opts.Minify,
			Iterate:         opts.Iterate,
			File:            opts.File,
			Directory:       opts.Directory,
		},
	})
	if err != nil {
		return err
	}
	if opts.DryRun {
		return writePlan(cmd.OutOrStdout(), plan.Plan())
	}
	printGenerateBanner(cmd.OutOrStdout(), plan)
	return service.RunGenerate(ctx, plan)
}
