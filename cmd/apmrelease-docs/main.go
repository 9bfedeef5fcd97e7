// Command apmrelease-docs renders man pages for every apmrelease command.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aragon/apmrelease/internal/cli"
	"github.com/aragon/apmrelease/internal/version"
	"github.com/spf13/cobra/doc"
)

func main() {
	outDir := flag.String("out", "docs/man", "directory to write man pages to")
	flag.Parse()

	if err := run(*outDir); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outDir string) error {
	date, err := resolveManHeaderDate()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", outDir, err)
	}

	root := cli.NewRootCommand()
	root.DisableAutoGenTag = true

	header := &doc.GenManHeader{
		Title:   "APMRELEASE",
		Section: "1",
		Source:  "apmrelease " + version.Short(),
		Manual:  "apmrelease manual",
		Date:    &date,
	}
	if err := doc.GenManTree(root, header, outDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}
	return nil
}

// resolveManHeaderDate honours SOURCE_DATE_EPOCH for reproducible output.
func resolveManHeaderDate() (time.Time, error) {
	raw := strings.TrimSpace(os.Getenv("SOURCE_DATE_EPOCH"))
	if raw == "" {
		return time.Unix(0, 0).UTC(), nil
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse SOURCE_DATE_EPOCH %q: %w", raw, err)
	}
	return time.Unix(seconds, 0).UTC(), nil
}
