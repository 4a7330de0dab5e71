// Command knightpaths enumerates every shortest knight path between two squares.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/knightpaths/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
