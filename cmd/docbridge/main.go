package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/docbridge/docbridge/internal/adapters/cli"
	"github.com/docbridge/docbridge/internal/bootstrap"
	"github.com/docbridge/docbridge/internal/config"
	"github.com/docbridge/docbridge/internal/core/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(cfg, "docbridge-cli")
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap error: %v\n", err)
		os.Exit(1)
	}

	command := cli.New(
		app.Client,
		app.Client,
		app.Categories,
		app.Watcher,
		app.Exporter,
		app.Sink,
		os.Stdout,
		app.Logger,
	)

	if err := command.Run(ctx, os.Args[1:]); err != nil {
		if ve, ok := domain.IsValidation(err); ok {
			for _, msg := range ve.Messages {
				fmt.Fprintf(os.Stderr, "error: %s\n", msg)
			}
		} else {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
