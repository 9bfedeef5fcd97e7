package main

import (
	"fmt"
	"os"

	"github.com/aragon/apmrelease/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
