package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"testforge.dev/pkg/testforge/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List the source files a scan would process",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			wf, cleanup, err := workflowFactory(ctx, cmd, false)
			if err != nil {
				return err
			}
			defer cleanup()

			return wf.List(ctx, domain.ListArgs{
				DiscoverArgs: domain.DiscoverArgs{
					Roots:        parsePaths(args),
					Exclude:      viper.GetStringSlice(excludeConfigKey),
					UseGitignore: viper.GetBool(gitignoreConfigKey),
				},
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
