package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testforge.dev/pkg/testforge/internal/domain"
	m "testforge.dev/pkg/testforge/internal/model"
)

var (
	errModeRequired    = errors.New("one of --file or --scan is required")
	errModeConflict    = errors.New("--file and --scan cannot be combined")
	errFileWithRoots   = errors.New("--file does not take positional paths")
	errSkippedInStrict = errors.New("some files were skipped")
)

var generateFileFlag string
var generateScanFlag bool
var generateParallelFlag int
var generateDryRunFlag bool
var generateStrictFlag bool
var generateProviderFlag string
var generateModelFlag string
var generateTimeoutFlag time.Duration
var generateBaseDirFlag string

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Generate unit tests with a generative model",
		Long:  generateLongDescription + "\n\nSyntax-checked languages: " + strings.Join(syntaxAdapter.Languages(), ", ") + ".",
		RunE: func(cmd *cobra.Command, args []string) error {
			discoverArgs, err := generateDiscoverArgs(cmd, args)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			wf, cleanup, err := workflowFactory(ctx, cmd, true)
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := wf.Generate(ctx, domain.GenerateArgs{
				DiscoverArgs: discoverArgs,
				Threads:      viper.GetInt(runParallelConfigKey),
				DryRun:       generateDryRunFlag,
				Reports:      m.Path(viper.GetString(outputFlagName)),
			})
			if err != nil {
				return err
			}

			if generateStrictFlag {
				if skipped := len(summary.Outcomes) - summary.Written(); skipped > 0 {
					return fmt.Errorf("%w: %d of %d", errSkippedInStrict, skipped, len(summary.Outcomes))
				}
			}

			return nil
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&generateFileFlag, "file", "f", "", "generate tests for a single source file")
	cmd.Flags().BoolVar(&generateScanFlag, "scan", false, "scan the given roots (default: current directory) for source files")

	cmd.Flags().IntVarP(&generateParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files processed concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().BoolVar(&generateDryRunFlag, dryRunFlagName, false, "show a diff of what would be appended without writing")
	cmd.Flags().BoolVar(&generateStrictFlag, "strict", false, "exit with an error when any file is skipped")

	cmd.Flags().StringVar(&generateProviderFlag, providerFlagName, viper.GetString(oracleProviderKey), "oracle provider (gemini or openai)")
	bindFlagToConfig(cmd.Flags().Lookup(providerFlagName), oracleProviderKey)

	cmd.Flags().StringVar(&generateModelFlag, modelFlagName, viper.GetString(oracleModelKey), "model name (default depends on provider)")
	bindFlagToConfig(cmd.Flags().Lookup(modelFlagName), oracleModelKey)

	cmd.Flags().DurationVar(&generateTimeoutFlag, timeoutFlagName, viper.GetDuration(oracleTimeoutKey), "deadline for a single oracle call")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), oracleTimeoutKey)

	cmd.Flags().StringVar(&generateBaseDirFlag, baseDirFlagName, viper.GetString(baseDirConfigKey), "directory relative test paths are resolved against (default: working directory)")
	bindFlagToConfig(cmd.Flags().Lookup(baseDirFlagName), baseDirConfigKey)
}

// generateDiscoverArgs validates the mode flags and turns them into discovery
// arguments.
func generateDiscoverArgs(cmd *cobra.Command, args []string) (domain.DiscoverArgs, error) {
	file, _ := cmd.Flags().GetString("file")
	scan, _ := cmd.Flags().GetBool("scan")

	switch {
	case file == "" && !scan:
		return domain.DiscoverArgs{}, errModeRequired
	case file != "" && scan:
		return domain.DiscoverArgs{}, errModeConflict
	case file != "" && len(args) > 0:
		return domain.DiscoverArgs{}, errFileWithRoots
	}

	return domain.DiscoverArgs{
		File:         m.Path(file),
		Roots:        parsePaths(args),
		Exclude:      viper.GetStringSlice(excludeConfigKey),
		UseGitignore: viper.GetBool(gitignoreConfigKey),
	}, nil
}
