package cli

import (
	"context"

	"github.com/spf13/cobra"

	"youi-build/internal/app"
	"youi-build/internal/types"
)

type buildOptions struct {
	BuildDirectory string
	missingDir     error
	Configuration  types.Configuration
	Target         string
	Args           []string
	DryRun         bool
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a generated project",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.missingDir
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireArguments(cmd, args); err != nil {
				return err
			}
			return runBuild(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().VarP(existingDirValue{target: &opts.BuildDirectory, missing: &opts.missingDir, remedy: "The project must be generated before building. See generate."},
		"build_directory", "b", "Generated build directory")
	cmd.Flags().VarP(configurationValue{&opts.Configuration}, "config", "c", "Build configuration ("+configurationList()+")")
	cmd.Flags().StringVarP(&opts.Target, "target", "t", "", "Build target")
	cmd.Flags().StringArrayVarP(&opts.Args, "arg", "a", nil, "Argument passed through to the native build tool (repeatable)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry_run", false, "Print the commands without running them")

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts buildOptions) error {
	service := newAppService()
	plan, err := service.PlanBuild(ctx, app.BuildRequest{
		SourceDirectory: sourceDirectory(),
		BuildDirectory:  opts.BuildDirectory,
		Configuration:   opts.Configuration,
		Target:          opts.Target,
		Args:            opts.Args,
	})
	if err != nil {
		return err
	}
	if opts.DryRun {
		return writePlan(cmd.OutOrStdout(), plan.Plan())
	}
	printBuildBanner(cmd.OutOrStdout(), plan)
	return service.RunBuild(ctx, plan)
}
