// Command algoviz serves and runs step-traced algorithms.
//
// Usage:
//
//	algoviz serve [flags]                 start the HTTP API
//	algoviz run ALGORITHM [FILE|-] [flags] run one algorithm locally
//	algoviz list [--json]                 print the catalog
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/algoviz/internal/cli"
)

// version is set with -ldflags at build time.
var version = "dev"

func main() {
	if err := cli.NewRootCmd(version, os.LookupEnv).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
