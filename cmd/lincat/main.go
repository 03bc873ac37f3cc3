// SPDX-License-Identifier: MIT

// Command lincat prints the shape registry, the operator table and the binding
// catalog of the fixed-shape family, resolves products and evaluates single
// operations on JSON-encoded tensors.
//
//	lincat shapes
//	lincat --format json bindings --op mul
//	lincat resolve Vector3 RowVector2
//	lincat apply dot '{"type":"RowVector3","data":[[0,2,1]]}' '{"type":"Vector3","data":[[1],[-0.5],[2]]}'
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "lincat",
		Usage:     "Inspect the fixed-shape vector/matrix family and its binding catalog",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     globalFlags(),
		Before:    setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			shapesCmd(),
			opsCmd(),
			bindingsCmd(),
			resolveCmd(),
			applyCmd(),
		},
	}
}
