package cli

import (
	"fmt"

	"github.com/aragon/apmrelease/internal/cliutil"
	"github.com/aragon/apmrelease/internal/logging"
	"github.com/aragon/apmrelease/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var newLogger = logging.New

func Execute() error {
	return NewRootCommand().Execute()
}

func NewRootCommand() *cobra.Command {
	opts := &cliutil.GlobalOptions{}
	var logger *zap.Logger

	rootCmd := &cobra.Command{
		Use:   "apmrelease",
		Short: "Release pipeline helpers for aPM repositories",
		Long:  "apmrelease splits release tags and records published versions in per-network deploys.yml files.",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := cliutil.ValidOutputFormats[opts.OutputFormat]; !ok {
				return fmt.Errorf("invalid --output %q (valid: table, json, text, yaml)", opts.OutputFormat)
			}

			var err error
			logger, err = newLogger(opts.Verbose)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.ShowVersion {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), version.Detailed()); err != nil {
					return err
				}
				return nil
			}
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.Profile, "profile", "p", "", "AWS CLI profile name for s3:// record bases")
	rootCmd.PersistentFlags().StringVarP(&opts.Region, "region", "r", "", "AWS region override for s3:// record bases")
	rootCmd.PersistentFlags().BoolVar(&opts.DryRun, "dry-run", false, "Print changes without writing them")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputFormat, "output", "o", "table", "Output format: table, json, text, yaml")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.ShowVersion, "version", false, "Print build metadata and exit")

	rootCmd.AddCommand(newCompletionCommand())
	rootCmd.AddCommand(newVersionCommand())

	rootCmd.AddCommand(newSplitTagCommand())
	rootCmd.AddCommand(newDescribeTagCommand())
	rootCmd.AddCommand(newUpdateDeploysCommand())
	rootCmd.AddCommand(newListVersionsCommand())

	applyCommandHelpDefaults(rootCmd)

	return rootCmd
}
