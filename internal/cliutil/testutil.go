package cliutil

import "github.com/spf13/cobra"

// NewTestRootCommand wraps a command under a minimal root that has all
// persistent flags, suitable for use in package tests.
func NewTestRootCommand(child *cobra.Command) *cobra.Command {
	root := &cobra.Command{
		Use:          "apmrelease",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("profile", "p", "", "AWS CLI profile name for s3:// record bases")
	root.PersistentFlags().StringP("region", "r", "", "AWS region override for s3:// record bases")
	root.PersistentFlags().Bool("dry-run", false, "Print changes without writing them")
	root.PersistentFlags().StringP("output", "o", "table", "Output format: table, json, text, yaml")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
	root.PersistentFlags().Bool("version", false, "Print build metadata and exit")

	root.AddCommand(child)

	return root
}
