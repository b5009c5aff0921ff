// Command neopopdemo renders neopop buttons to PNG files.
//
//	neopopdemo render --config showcase.toml --out grid.png
//	neopopdemo animate --direction bottomRight --frames 12 --out frames/
//	neopopdemo describe --direction topLeft
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCLI(os.Stderr).rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
