package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/pawsmatch/internal/config"
	"github.com/five82/pawsmatch/internal/deck"
	"github.com/five82/pawsmatch/internal/interest"
	"github.com/five82/pawsmatch/internal/logging"
	"github.com/five82/pawsmatch/internal/petsource"
	"github.com/five82/pawsmatch/internal/prefs"
	"github.com/five82/pawsmatch/internal/ui"
)

// Options configure the PawsMatch application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pawsmatch/prefs.toml
	BufferSize int    // overrides buffer_size when positive
	Seed       uint64 // overrides seed when non-zero
}

// Run boots the PawsMatch TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.BufferSize > 0 {
		cfg.BufferSize = opts.BufferSize
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	env, err := build(cfg, logger)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		return err
	}
	defer func() {
		if err := env.store.Close(); err != nil {
			logger.Warn("close interest store", zap.Error(err))
		}
	}()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger.Info("pawsmatch starting",
		zap.Int("buffer_size", cfg.BufferSize),
		zap.Int("pool_size", env.poolSize),
		zap.String("image_api", cfg.ImageAPI),
		zap.String("interest_db", cfg.InterestDB),
	)

	env.stack.Start(runCtx)
	notify := StartRelay(runCtx, env.stack.Changes(), defaultHeartbeat)

	uiErr := ui.Run(ui.Options{
		Context:        runCtx,
		Deck:           env.stack,
		Notify:         notify,
		Warmer:         env.images,
		Recorder:       env.store,
		LogPath:        cfg.LogFile,
		Logger:         logger,
		ThemeName:      userPrefs.Theme,
		ShowURLs:       userPrefs.ShowURLs,
		PrefsPath:      opts.PrefsPath,
		SwipeThreshold: cfg.SwipeThreshold,
		SwipeVelocity:  cfg.SwipeVelocity,
	})

	shutdown(env.stack, cancel)

	snap := env.stack.Snapshot()
	logger.Info("pawsmatch stopped",
		zap.Int("fetched", snap.Stats.Fetched),
		zap.Int("failed", snap.Stats.Failed),
		zap.Int("seen", snap.Stats.Consumed),
	)

	if uiErr != nil {
		return fmt.Errorf("run ui: %w", uiErr)
	}
	return nil
}

// shutdown disposes the deck and lets in-flight fetches run to completion
// (each is bounded by fetch_timeout) before cancelling the session context.
func shutdown(stack *deck.Stack, cancel context.CancelFunc) {
	stack.Close()
	stack.Wait()
	cancel()
}

// environment holds the wired components for one session.
type environment struct {
	stack    *deck.Stack
	images   *petsource.ImageClient
	store    *interest.Store
	poolSize int
}

func build(cfg config.Config, logger *zap.Logger) (environment, error) {
	pool, err := petsource.LoadPool(cfg.PoolPath)
	if err != nil {
		return environment{}, fmt.Errorf("load pet pool: %w", err)
	}

	images, err := petsource.NewImageClient(cfg.ImageAPI)
	if err != nil {
		return environment{}, fmt.Errorf("init image client: %w", err)
	}

	provider, err := petsource.NewProvider(pool, petsource.NewPicker(cfg.Seed), images, petsource.ProviderOptions{
		FallbackImage: cfg.FallbackImage,
		Logger:        logger.Named("petsource"),
	})
	if err != nil {
		return environment{}, fmt.Errorf("init pet provider: %w", err)
	}

	store, err := interest.Open(cfg.InterestDB)
	if err != nil {
		return environment{}, fmt.Errorf("open interest store: %w", err)
	}

	stack := deck.New(provider, deck.Options{
		BufferSize:   cfg.BufferSize,
		FetchTimeout: cfg.FetchTimeout,
		Logger:       logger.Named("deck"),
	})

	return environment{stack: stack, images: images, store: store, poolSize: pool.Len()}, nil
}
