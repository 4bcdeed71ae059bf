package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"youi-build/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "YOUI_BUILD"

type RootConfig struct {
	ConfigFile      string
	LogLevel        string
	SourceDirectory string
}

// newAppService is swapped out by tests.
var newAppService = func() app.Service {
	return app.NewService(viper.GetString("engine_install_dir"))
}

func Execute() {
	root := newRootCommand()
	cmd, err := root.ExecuteC()
	if err != nil {
		reportError(os.Stderr, cmd, err)
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "youi-build",
		Short:         "Generate, build and reinstall You.i Engine applications",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			cmd.SetContext(log.Logger.WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config_file", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log_level", "info", "Log level")
	cmd.PersistentFlags().StringVar(&cfg.SourceDirectory, "source_directory", ".", "Project directory containing CMakeLists.txt")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log_level"))
	_ = viper.BindPFlag("source_directory", cmd.PersistentFlags().Lookup("source_directory"))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err.Error())
	})

	cmd.AddCommand(newGenerateCommand())
	cmd.AddCommand(newBuildCommand())
	cmd.AddCommand(newReinstallCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	_ = viper.BindEnv("tizen_sdk_home", "TIZEN_SDK_HOME", envPrefix+"_TIZEN_SDK_HOME")

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("youi-build")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/youi-build")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func usageError(msg string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msg)
}

// reportError prints the diagnostic, plus the usage text for usage errors.
func reportError(w io.Writer, cmd *cobra.Command, err error) {
	fmt.Fprintf(w, "ERROR: %s\n", errorMessage(err))
	if errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument && cmd != nil {
		fmt.Fprintln(w)
		fmt.Fprint(w, cmd.UsageString())
	}
}

// exitCodeForError maps usage errors to 1 and unmet preconditions to 2;
// failed external steps exit with 1.
func exitCodeForError(err error) int {
	switch errbuilder.CodeOf(err) {
	case errbuilder.CodeInvalidArgument:
		return 1
	case errbuilder.CodeNotFound, errbuilder.CodeFailedPrecondition:
		return 2
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
