package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/aragon/apmrelease/internal/cliutil"
	"github.com/aragon/apmrelease/internal/tag"
)

func TestSplitTagPrintsField(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{field: "version", want: "3.2.1\n"},
		{field: "app", want: "voting-app\n"},
		{field: "network", want: "rinkeby\n"},
	}

	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			stdout, stderr, err := executeCommandSplit(t, "split-tag", "3.2.1-voting-app-rinkeby", tc.field)
			if err != nil {
				t.Fatalf("split-tag %s: %v", tc.field, err)
			}
			if stdout != tc.want {
				t.Fatalf("split-tag %s = %q, want %q", tc.field, stdout, tc.want)
			}
			if stderr != "" {
				t.Fatalf("unexpected stderr: %q", stderr)
			}
		})
	}
}

func TestSplitTagTwoSegmentAppIsEmptyLine(t *testing.T) {
	output, err := executeCommand(t, "split-tag", "1.0.0-mainnet", "app")
	if err != nil {
		t.Fatalf("split-tag: %v", err)
	}
	if output != "\n" {
		t.Fatalf("expected empty line, got %q", output)
	}
}

func TestSplitTagUnknownFieldFails(t *testing.T) {
	output, err := executeCommand(t, "split-tag", "1.0.0-voting-mainnet", "commit")
	if !errors.Is(err, tag.ErrUnknownSelector) {
		t.Fatalf("expected ErrUnknownSelector, got %v", err)
	}
	if output != "" {
		t.Fatalf("expected no stdout, got %q", output)
	}
}

func TestSplitTagLenientIgnoresUnknownField(t *testing.T) {
	output, err := executeCommand(t, "split-tag", "1.0.0-voting-mainnet", "commit", "--lenient")
	if err != nil {
		t.Fatalf("split-tag --lenient: %v", err)
	}
	if output != "" {
		t.Fatalf("expected no output, got %q", output)
	}
}

func TestSplitTagSingleSegmentNetworkFails(t *testing.T) {
	_, err := executeCommand(t, "split-tag", "1.0.0", "network")
	if !errors.Is(err, tag.ErrMalformedTag) {
		t.Fatalf("expected ErrMalformedTag, got %v", err)
	}
}

func TestSplitTagArgumentCount(t *testing.T) {
	_, err := executeCommand(t, "split-tag", "1.0.0-voting-mainnet")
	if !errors.Is(err, cliutil.ErrArgumentCount) {
		t.Fatalf("expected ErrArgumentCount, got %v", err)
	}
}

func TestDescribeTagJSON(t *testing.T) {
	output, err := executeCommand(t, "describe-tag", "1.0.0-token-manager-mainnet", "--output", "json")
	if err != nil {
		t.Fatalf("describe-tag: %v", err)
	}

	var records []map[string]string
	if err := json.Unmarshal([]byte(output), &records); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, output)
	}
	want := map[string]string{"version": "1.0.0", "app": "token-manager", "network": "mainnet"}
	if len(records) != 1 {
		t.Fatalf("expected one record, got %#v", records)
	}
	for key, value := range want {
		if records[0][key] != value {
			t.Fatalf("%s = %q, want %q", key, records[0][key], value)
		}
	}
}
