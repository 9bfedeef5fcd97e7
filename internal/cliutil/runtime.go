package cliutil

import (
	"fmt"

	"github.com/aragon/apmrelease/internal/logging"
	"github.com/aragon/apmrelease/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// GlobalOptions holds the persistent flags shared by all commands.
type GlobalOptions struct {
	Profile      string
	Region       string
	DryRun       bool
	OutputFormat string
	Verbose      bool
	ShowVersion  bool
}

// ValidOutputFormats enumerates the allowed --output values.
var ValidOutputFormats = map[string]struct{}{
	"table": {},
	"json":  {},
	"text":  {},
	"yaml":  {},
}

// CommandRuntime bundles the parsed options, formatter, and logger for a single command invocation.
type CommandRuntime struct {
	Options   GlobalOptions
	Formatter output.Formatter
	Logger    *zap.Logger
}

// NewCommandRuntime extracts global options from the cobra command and builds a CommandRuntime.
func NewCommandRuntime(cmd *cobra.Command) (CommandRuntime, error) {
	opts, err := GlobalOptionsFromCommand(cmd)
	if err != nil {
		return CommandRuntime{}, err
	}

	formatter, err := output.NewFormatter(opts.OutputFormat)
	if err != nil {
		return CommandRuntime{}, err
	}

	return CommandRuntime{
		Options:   opts,
		Formatter: formatter,
		Logger:    logging.FromContext(cmd.Context()),
	}, nil
}

// GlobalOptionsFromCommand reads persistent flags from the root command.
func GlobalOptionsFromCommand(cmd *cobra.Command) (GlobalOptions, error) {
	root := cmd.Root()

	profile, err := root.PersistentFlags().GetString("profile")
	if err != nil {
		return GlobalOptions{}, fmt.Errorf("read --profile: %w", err)
	}

	region, err := root.PersistentFlags().GetString("region")
	if err != nil {
		return GlobalOptions{}, fmt.Errorf("read --region: %w", err)
	}

	dryRun, err := root.PersistentFlags().GetBool("dry-run")
	if err != nil {
		return GlobalOptions{}, fmt.Errorf("read --dry-run: %w", err)
	}

	outputFormat, err := root.PersistentFlags().GetString("output")
	if err != nil {
		return GlobalOptions{}, fmt.Errorf("read --output: %w", err)
	}

	verbose, err := root.PersistentFlags().GetBool("verbose")
	if err != nil {
		return GlobalOptions{}, fmt.Errorf("read --verbose: %w", err)
	}

	showVersion, err := root.PersistentFlags().GetBool("version")
	if err != nil {
		return GlobalOptions{}, fmt.Errorf("read --version: %w", err)
	}

	return GlobalOptions{
		Profile:      profile,
		Region:       region,
		DryRun:       dryRun,
		OutputFormat: outputFormat,
		Verbose:      verbose,
		ShowVersion:  showVersion,
	}, nil
}

// WriteDataset formats a tabular dataset to the command's output.
func WriteDataset(cmd *cobra.Command, runtime CommandRuntime, headers []string, rows [][]string) error {
	return runtime.Formatter.Format(cmd.OutOrStdout(), output.Dataset{Headers: headers, Rows: rows})
}
