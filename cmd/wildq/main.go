// Command wildq queries YAML datasets through a wildcard index.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hupe1980/wildmap/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// ExitErrors have already been reported by the command.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
