package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var commandExamples = map[string]string{
	"apmrelease": strings.TrimSpace(`
apmrelease split-tag 3.2.1-voting-rinkeby app
apmrelease update-deploys ./ voting rinkeby 3.2.1 QmHash 0xContract deadbeef`),
	"apmrelease completion": strings.TrimSpace(`
apmrelease completion zsh > "${fpath[1]}/_apmrelease"
apmrelease completion bash > /etc/bash_completion.d/apmrelease`),
	"apmrelease version": strings.TrimSpace(`
apmrelease version
apmrelease --version`),
	"apmrelease split-tag": strings.TrimSpace(`
apmrelease split-tag 3.2.1-voting-rinkeby version
apmrelease split-tag 1.0.0-token-manager-mainnet app
apmrelease split-tag "$GITHUB_REF_NAME" network`),
	"apmrelease describe-tag": strings.TrimSpace(`
apmrelease describe-tag 3.2.1-voting-rinkeby
apmrelease describe-tag 3.2.1-voting-rinkeby --output json`),
	"apmrelease update-deploys": strings.TrimSpace(`
apmrelease update-deploys ./ voting rinkeby 3.2.1 QmHash 0xContract deadbeef
apmrelease update-deploys ./ voting rinkeby 3.2.1 QmHash 0xContract deadbeef 0xTxHash --dry-run
apmrelease update-deploys s3://releases/voting/ voting mainnet 3.2.1 QmHash 0xContract deadbeef --profile release`),
	"apmrelease list-versions": strings.TrimSpace(`
apmrelease list-versions ./ voting rinkeby
apmrelease list-versions ./ voting rinkeby --output yaml`),
}

func applyCommandHelpDefaults(root *cobra.Command) {
	walkCommands(root, func(cmd *cobra.Command) {
		if strings.TrimSpace(cmd.Long) == "" && strings.TrimSpace(cmd.Short) != "" {
			cmd.Long = cmd.Short
		}

		if strings.TrimSpace(cmd.Example) == "" {
			cmd.Example = defaultCommandExample(cmd)
		}
	})
}

func defaultCommandExample(cmd *cobra.Command) string {
	if example, ok := commandExamples[cmd.CommandPath()]; ok {
		return example
	}

	return strings.TrimSpace(fmt.Sprintf(`
%s --help`, cmd.CommandPath()))
}

func walkCommands(root *cobra.Command, visit func(*cobra.Command)) {
	visit(root)
	for _, child := range root.Commands() {
		walkCommands(child, visit)
	}
}
