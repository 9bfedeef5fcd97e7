package cli

import (
	"time"

	apmaws "github.com/aragon/apmrelease/internal/aws"
	"github.com/aragon/apmrelease/internal/cliutil"
	"github.com/aragon/apmrelease/internal/deploys"
	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"
)

var (
	loadAWSConfig = apmaws.LoadAWSConfig
	newS3Client   = func(cfg awssdk.Config) deploys.S3API { return s3.NewFromConfig(cfg) }
	now           = time.Now
)

func newUpdateDeploysCommand() *cobra.Command {
	var legacyWritePath bool

	cmd := &cobra.Command{
		Use:   "update-deploys <base> <app> <network> <version> <cid> <contract> <commit> [txhash]",
		Short: "Record a published version in environments/<network>/deploys.yml",
		Long: `Record a published version in <base>environments/<network>/deploys.yml.

The entry at <app>.aragonpm.eth.versions.<version> is replaced with the current
UTC time, the IPFS content hash, contract address, commit hash, and optional
transaction hash. The app key and its versions mapping must already exist.

A base of the form s3://bucket/prefix/ reads and writes the record in S3.`,
		Args: cliutil.RangeArgs(7, 8),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := deploys.Request{
				Base:     args[0],
				App:      args[1],
				Network:  args[2],
				Version:  args[3],
				CID:      args[4],
				Contract: args[5],
				Commit:   args[6],
			}
			if len(args) == 8 {
				req.TxHash = args[7]
			}
			return runUpdateDeploys(cmd, req, legacyWritePath)
		},
		SilenceUsage: true,
	}

	cmd.Flags().BoolVar(&legacyWritePath, "legacy-write-path", false,
		"Write to environments/<network>/deploys.yml relative to the working directory instead of under <base>")

	return cmd
}

func runUpdateDeploys(cmd *cobra.Command, req deploys.Request, legacyWritePath bool) error {
	runtime, store, err := newRecordRuntime(cmd, req.Base)
	if err != nil {
		return err
	}

	updater := deploys.Updater{
		Store:           store,
		Clock:           now,
		Format:          deploys.ISOMillisUTC,
		Logger:          runtime.Logger,
		LegacyWritePath: legacyWritePath,
	}

	if runtime.Options.DryRun {
		res, err := updater.Plan(cmd.Context(), req)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(res.Data)
		return err
	}

	_, err = updater.Update(cmd.Context(), req)
	return err
}

func newListVersionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-versions <base> <app> <network>",
		Short: "List the versions recorded for an app on a network",
		Args:  cliutil.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, app, network := args[0], args[1], args[2]

			runtime, store, err := newRecordRuntime(cmd, base)
			if err != nil {
				return err
			}

			raw, err := store.Load(cmd.Context(), deploys.RecordPath(base, network))
			if err != nil {
				return err
			}
			doc, err := deploys.ParseDocument(raw)
			if err != nil {
				return err
			}
			versions, err := doc.Versions(app)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(versions))
			for _, v := range versions {
				rows = append(rows, []string{v.Version, v.Date, v.TxHash, v.IPFSHash, v.ContractAddress, v.CommitHash})
			}
			return cliutil.WriteDataset(cmd, runtime,
				[]string{"version", "date", "txHash", "ipfsHash", "contractAddress", "commitHash"}, rows)
		},
		SilenceUsage: true,
	}
}

// newRecordRuntime picks the S3 store for s3:// bases and the filesystem otherwise.
func newRecordRuntime(cmd *cobra.Command, base string) (cliutil.CommandRuntime, deploys.Store, error) {
	if deploys.IsS3URI(base) {
		runtime, client, err := cliutil.NewServiceRuntime(cmd, loadAWSConfig, newS3Client)
		if err != nil {
			return cliutil.CommandRuntime{}, nil, err
		}
		return runtime, deploys.S3Store{Client: client}, nil
	}

	runtime, err := cliutil.NewCommandRuntime(cmd)
	if err != nil {
		return cliutil.CommandRuntime{}, nil, err
	}
	return runtime, deploys.FileStore{}, nil
}
