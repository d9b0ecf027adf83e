package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/collabctl/collabctl/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// See cmd/root.go for Execute()
	if err := cmd.Execute(ctx); err != nil {
		stop()
		os.Exit(-1)
	}
}
