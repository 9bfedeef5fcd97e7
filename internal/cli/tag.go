package cli

import (
	"errors"
	"fmt"

	"github.com/aragon/apmrelease/internal/cliutil"
	"github.com/aragon/apmrelease/internal/tag"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSplitTagCommand() *cobra.Command {
	var lenient bool

	cmd := &cobra.Command{
		Use:   "split-tag <tag> <version|app|network>",
		Short: "Print one field of a <version>-<app>-<network> release tag",
		Long: `Split a release tag on "-" and print one field.

version is the first segment, network the last, and app everything in between
joined back with "-".`,
		Args: cliutil.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			fields := make([]string, 0, len(tag.Selectors))
			for _, sel := range tag.Selectors {
				fields = append(fields, string(sel))
			}
			return fields, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplitTag(cmd, args[0], args[1], lenient)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&lenient, "lenient", false, "Ignore unknown field names instead of failing")

	return cmd
}

func runSplitTag(cmd *cobra.Command, raw, field string, lenient bool) error {
	runtime, err := cliutil.NewCommandRuntime(cmd)
	if err != nil {
		return err
	}

	sel, err := tag.ParseSelector(field)
	if err != nil {
		if lenient && errors.Is(err, tag.ErrUnknownSelector) {
			runtime.Logger.Debug("ignoring unknown tag field", zap.String("field", field))
			return nil
		}
		return err
	}

	value, err := tag.Field(raw, sel)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}

func newDescribeTagCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe-tag <tag>",
		Short: "Print every field of a release tag",
		Args:  cliutil.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runtime, err := cliutil.NewCommandRuntime(cmd)
			if err != nil {
				return err
			}

			parsed, err := tag.Parse(args[0])
			if err != nil {
				return err
			}

			return cliutil.WriteDataset(cmd, runtime,
				[]string{"version", "app", "network"},
				[][]string{{parsed.Version, parsed.App, parsed.Network}})
		},
		SilenceUsage: true,
	}
}
