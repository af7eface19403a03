// Command cssls is a CLI for working with CSS files: syntax checking
// and custom property inspection.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "cssls",
		Usage: "CSS tooling: check syntax, inspect custom properties",
		Commands: []*cli.Command{
			checkCommand(),
			varsCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "cssls: %v\n", err)
		os.Exit(1)
	}
}
