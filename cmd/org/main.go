package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"organizer/internal/cli"
	"organizer/internal/config"
)

func main() {
	// Environment decides where the data lives: ORG_ENV=development|testing|production
	env := config.GetEnvironment()
	root := cli.NewRootCommand(cli.WithEnvironment(env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.Execute(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
