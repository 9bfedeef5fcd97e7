// Package version carries build metadata injected at link time, e.g.
//
//	go build -ldflags "-X github.com/aragon/apmrelease/internal/version.Version=1.2.0"
package version

import (
	"fmt"
	"strings"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Short returns the release version without a leading "v".
func Short() string {
	return strings.TrimPrefix(Version, "v")
}

func Detailed() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuild date: %s", Short(), Commit, Date)
}
