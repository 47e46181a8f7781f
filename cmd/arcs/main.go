// Command arcs evaluates, records, replays and tests closed arcs on the unit
// circle.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/arcs/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
