// cmd/phishscan/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"phishscan/internal/cli"
)

var (
	// Set with -ldflags at build time.
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	build := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(context.Background(), build); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
