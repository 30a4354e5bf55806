package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/pawsmatch/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config path (optional, defaults to ~/.config/pawsmatch/config.toml)")
	bufferSize := flag.Int("buffer", 0, "lookahead buffer size (optional, overrides config)")
	seed := flag.Uint64("seed", 0, "random seed for pet selection (optional, 0 uses the clock)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, Seed: *seed}
	if n := *bufferSize; n > 0 {
		opts.BufferSize = n
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "pawsmatch: %v\n", err)
		return 1
	}
	return 0
}
