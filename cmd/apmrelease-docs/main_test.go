package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestResolveManHeaderDateDefaultsToUnixEpoch(t *testing.T) {
	t.Setenv("SOURCE_DATE_EPOCH", "")

	got, err := resolveManHeaderDate()
	if err != nil {
		t.Fatalf("resolveManHeaderDate() error = %v", err)
	}

	want := time.Unix(0, 0).UTC()
	if !got.Equal(want) {
		t.Fatalf("resolveManHeaderDate() = %v, want %v", got, want)
	}
}

func TestResolveManHeaderDateUsesSourceDateEpoch(t *testing.T) {
	t.Setenv("SOURCE_DATE_EPOCH", "1700000000")

	got, err := resolveManHeaderDate()
	if err != nil {
		t.Fatalf("resolveManHeaderDate() error = %v", err)
	}

	want := time.Unix(1700000000, 0).UTC()
	if !got.Equal(want) {
		t.Fatalf("resolveManHeaderDate() = %v, want %v", got, want)
	}
}

func TestResolveManHeaderDateRejectsInvalidSourceDateEpoch(t *testing.T) {
	t.Setenv("SOURCE_DATE_EPOCH", "not-a-number")

	if _, err := resolveManHeaderDate(); err == nil {
		t.Fatal("resolveManHeaderDate() expected error for invalid SOURCE_DATE_EPOCH")
	}
}

func TestRunWritesManPages(t *testing.T) {
	t.Setenv("SOURCE_DATE_EPOCH", "1700000000")
	outDir := filepath.Join(t.TempDir(), "man")

	if err := run(outDir); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for _, name := range []string{"apmrelease.1", "apmrelease-split-tag.1", "apmrelease-update-deploys.1"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if !strings.Contains(string(data), "APMRELEASE") {
			t.Fatalf("%s missing man header\n%s", name, data)
		}
	}
}
