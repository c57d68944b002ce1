// Package main is the entry point for the lasgrid-shim CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/runoshun/lasgrid-shim/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(version)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	code, show := cli.ExitStatus(err)
	if show {
		fmt.Fprintln(os.Stderr, err)
	}
	return code
}
