package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aragon/apmrelease/internal/version"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	stdout, _, err := executeCommandSplit(t, args...)
	return stdout, err
}

// executeCommandSplit keeps stdout and stderr apart so tests can check that
// command output is the only thing on stdout.
func executeCommandSplit(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	oldLogger := newLogger
	newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	t.Cleanup(func() { newLogger = oldLogger })

	cmd := NewRootCommand()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestHelpListsCommands(t *testing.T) {
	output, err := executeCommand(t, "--help")
	if err != nil {
		t.Fatalf("execute --help: %v", err)
	}

	for _, item := range []string{"split-tag", "describe-tag", "update-deploys", "list-versions", "completion", "version"} {
		if !strings.Contains(output, item) {
			t.Fatalf("help output missing %q\n%s", item, output)
		}
	}
}

func TestVersionFlagPrintsBuildMetadata(t *testing.T) {
	oldVersion, oldCommit, oldDate := version.Version, version.Commit, version.Date
	defer func() {
		version.Version, version.Commit, version.Date = oldVersion, oldCommit, oldDate
	}()

	version.Version = "9.9.9"
	version.Commit = "deadbee"
	version.Date = "2026-10-18T00:00:00Z"

	output, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("execute --version: %v", err)
	}

	for _, field := range []string{"version: 9.9.9", "commit: deadbee", "build date: 2026-10-18T00:00:00Z"} {
		if !strings.Contains(output, field) {
			t.Fatalf("version output missing %q\n%s", field, output)
		}
	}
}

func TestInvalidOutputFormatIsRejected(t *testing.T) {
	_, err := executeCommand(t, "describe-tag", "1.0.0-voting-rinkeby", "--output", "xml")
	if err == nil || !strings.Contains(err.Error(), "invalid --output") {
		t.Fatalf("expected invalid output error, got %v", err)
	}
}

func TestCompletionZshGeneratesScript(t *testing.T) {
	output, err := executeCommand(t, "completion", "zsh")
	if err != nil {
		t.Fatalf("execute completion zsh: %v", err)
	}

	if !strings.Contains(output, "#compdef apmrelease") {
		t.Fatalf("unexpected zsh completion output\n%s", output)
	}
}

func TestCompletionBashGeneratesScript(t *testing.T) {
	output, err := executeCommand(t, "completion", "bash")
	if err != nil {
		t.Fatalf("execute completion bash: %v", err)
	}

	if !strings.Contains(output, "complete -o default -F __start_apmrelease apmrelease") {
		t.Fatalf("unexpected bash completion output\n%s", output)
	}
}

func TestVersionCommandPrintsBuildMetadata(t *testing.T) {
	output, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("execute version command: %v", err)
	}
	if !strings.Contains(output, "version:") || !strings.Contains(output, "commit:") || !strings.Contains(output, "build date:") {
		t.Fatalf("unexpected version command output\n%s", output)
	}
}

func TestEveryCommandHasExample(t *testing.T) {
	walkCommands(NewRootCommand(), func(cmd *cobra.Command) {
		if strings.TrimSpace(cmd.Example) == "" {
			t.Errorf("command %q has no example", cmd.CommandPath())
		}
	})
}
