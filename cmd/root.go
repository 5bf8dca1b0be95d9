// Package cmd provides the root command and CLI setup for testforge.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	m "testforge.dev/pkg/testforge/internal/model"
)

// reportsOutputDirFlag is a root-level flag shared by commands that write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters discovered files.
var excludePatterns []string

// gitignoreFlag makes discovery honour .gitignore files under each root.
var gitignoreFlag bool

var verboseFlag bool
var logFileFlag string

func init() {
	configureRootFlags(rootCmd)
}

const discoveryHelp = `Discovery walks each root recursively and keeps files ending in
.py .js .ts .java .go or .rs. Directories named venv, tests or .git are
never entered.`

const rootLongDescription = `Testforge asks a generative model to write unit tests for your source
files. Each answer is parsed, checked for required fields and syntax, and
appended to the test file the model picked. Nothing is ever overwritten.

` + discoveryHelp

const generateLongDescription = `Generate tests for a single file (--file) or for every source file found
under the given roots (--scan, default: current directory).

` + discoveryHelp

const listLongDescription = `List the source files a scan would send to the model.

` + discoveryHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "testforge",
		Short:         "AI-assisted unit test generator",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			loadDotEnv(dotEnvFileName)
			configureLogger(logFileFlag, verboseFlag || viper.GetBool(logVerboseKey))
			logConfigReadError()

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVar(&gitignoreFlag, gitignoreFlagName, viper.GetBool(gitignoreConfigKey), "skip files matched by .gitignore under each root")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(gitignoreFlagName), gitignoreConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file path (default "+defaultLogFilename+")")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// SIGINT and SIGTERM cancel the command context so in-flight oracle calls stop.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
