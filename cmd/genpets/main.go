package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/five82/pawsmatch/internal/petgen"
)

func main() {
	os.Exit(run())
}

func run() int {
	count := flag.Int("count", 50, "number of pets to generate")
	model := flag.String("model", petgen.DefaultModel, "Gemini model name")
	language := flag.String("lang", "English", "language for the bios")
	out := flag.String("out", "pets.json", "output path")
	verbose := flag.Bool("v", false, "log requests to stderr")
	flag.Parse()

	_ = godotenv.Load()

	apiKey := os.Getenv("GOOGLE_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		fmt.Fprintln(os.Stderr, "genpets: set GOOGLE_API_KEY or GEMINI_API_KEY (environment or .env)")
		return 1
	}

	logger := zap.NewNop()
	if *verbose {
		if dev, err := zap.NewDevelopment(); err == nil {
			logger = dev
		}
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, 2*time.Minute)
	defer cancelTimeout()

	gen, err := petgen.NewGemini(ctx, apiKey, *model, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genpets: %v\n", err)
		return 1
	}

	pool, err := petgen.Pool(ctx, gen, *count, *language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "genpets: %v\n", err)
		return 1
	}

	data, err := pool.Encode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "genpets: %v\n", err)
		return 1
	}
	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "genpets: create output dir: %v\n", err)
			return 1
		}
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "genpets: write pool: %v\n", err)
		return 1
	}

	fmt.Printf("Generated %d pet profiles, saved to %s\n", pool.Len(), *out)
	if pool.Len() != *count {
		fmt.Fprintf(os.Stderr, "genpets: asked for %d pets, model returned %d\n", *count, pool.Len())
	}
	return 0
}
