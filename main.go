package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/larynjahor/brackets/pkg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	os.Exit(exitCode(newRootCmd().ExecuteContext(ctx)))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, pkg.ErrUnbalanced):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "brackets:", err)
		return 2
	}
}
