package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/indaco/update-plist/internal/cli"
	"github.com/indaco/update-plist/internal/printer"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		os.Exit(1)
	}
}

// runCLI runs the command with args. ErrUsage and ErrFailed have already
// been reported; anything else comes from flag parsing or the framework.
func runCLI(args []string) error {
	err := cli.New(os.Stdout, os.Stderr).Run(context.Background(), args)
	if err != nil && !errors.Is(err, cli.ErrUsage) && !errors.Is(err, cli.ErrFailed) {
		fmt.Fprintln(os.Stderr, printer.Error(err.Error()))
	}
	return err
}
