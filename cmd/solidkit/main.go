// Command solidkit runs SOLID, DRY and KISS/YAGNI examples and the
// well-designed services behind them.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/solidkit/internal/adapters/driving/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetServiceFactory(buildServices)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
