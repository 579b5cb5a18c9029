// Package main is the entry point for the fred task runner.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/fred/cmd/fred/commands"
	"go.trai.ch/fred/internal/app"
	_ "go.trai.ch/fred/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components. Each run gets its own cache so
	// settings are reloaded and host tasks are registered on a fresh App.
	components, _, err := graft.ExecuteFor[*app.Components](ctx, graft.WithCache(graft.NewMemoryCache()))
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}

	// 2. Host tasks
	if err := registerTasks(components); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}

	// 3. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout)

	// 4. Execution
	if err := cli.Execute(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}
	return 0
}
