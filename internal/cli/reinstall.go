package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"youi-build/internal/app"
	"youi-build/internal/types"
)

type reinstallOptions struct {
	BuildDirectory string
	missingDir     error
	Configuration  types.Configuration
	Start          bool
	PackageName    string
	AppName        string
	Flavor         string
	UninstallFirst bool
	Device         string
}

func newReinstallCommand() *cobra.Command {
	opts := reinstallOptions{}
	cmd := &cobra.Command{
		Use:   "reinstall",
		Short: "Rebuild and reinstall an application on a connected device",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.missingDir
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireArguments(cmd, args); err != nil {
				return err
			}
			return runReinstall(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().VarP(existingDirValue{target: &opts.BuildDirectory, missing: &opts.missingDir, remedy: "Make sure you run generate first."},
		"build_directory", "b", "Generated build directory")
	cmd.Flags().VarP(configurationValue{&opts.Configuration}, "config", "c", "Build configuration ("+configurationList()+")")
	cmd.Flags().BoolVarP(&opts.Start, "start", "s", false, "Launch the application after installing")
	cmd.Flags().StringVarP(&opts.PackageName, "package_name", "p", "", "Package or bundle identifier")
	cmd.Flags().StringVar(&opts.AppName, "appname", "", "Application name; defaults to the CMake project name")
	cmd.Flags().StringVar(&opts.Flavor, "flavor", "", "Android product flavor")
	cmd.Flags().BoolVarP(&opts.UninstallFirst, "uninstall_first", "u", false, "Uninstall the application before installing")
	cmd.Flags().StringVarP(&opts.Device, "target", "t", "", "Device serial or name to install to")

	return cmd
}

func runReinstall(ctx context.Context, cmd *cobra.Command, opts reinstallOptions) error {
	service := newAppService()
	result, err := service.Reinstall(ctx, app.ReinstallRequest{
		SourceDirectory: sourceDirectory(),
		BuildDirectory:  opts.BuildDirectory,
		Configuration:   opts.Configuration,
		Package: types.PackageIdentity{
			AppName:        opts.AppName,
			PackageName:    opts.PackageName,
			Flavor:         opts.Flavor,
			Device:         opts.Device,
			UninstallFirst: opts.UninstallFirst,
			Start:          opts.Start,
		},
		TizenSDKHome: viper.GetString("tizen_sdk_home"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "reinstalled %s", result.Platform)
	if result.PackageName != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " package %s", result.PackageName)
	}
	if result.Device != "" {
		fmt.Fprintf(cmd.OutOrStdout(), " on %s", result.Device)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
