package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures every tunable PawsMatch reads at startup.
type Config struct {
	BufferSize     int
	FetchTimeout   time.Duration
	ImageAPI       string
	FallbackImage  string
	PoolPath       string
	InterestDB     string
	LogFile        string
	LogLevel       string
	Seed           uint64
	SwipeThreshold int
	SwipeVelocity  float64
}

const (
	defaultConfigPath     = "~/.config/pawsmatch/config.toml"
	defaultBufferSize     = 3
	defaultFetchTimeout   = 10 * time.Second
	defaultImageAPI       = "https://dog.ceo/api/breeds/image/random"
	defaultFallbackImage  = "https://images.dog.ceo/breeds/retriever-golden/n02099601_3004.jpg"
	defaultInterestDB     = "~/.local/share/pawsmatch/interest.db"
	defaultLogFile        = "~/.local/share/pawsmatch/pawsmatch.log"
	defaultLogLevel       = "info"
	defaultSwipeThreshold = 12
	defaultSwipeVelocity  = 60.0
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		BufferSize:     defaultBufferSize,
		FetchTimeout:   defaultFetchTimeout,
		ImageAPI:       defaultImageAPI,
		FallbackImage:  defaultFallbackImage,
		InterestDB:     mustExpand(defaultInterestDB),
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
		SwipeThreshold: defaultSwipeThreshold,
		SwipeVelocity:  defaultSwipeVelocity,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BufferSize     int      `toml:"buffer_size"`
		FetchTimeout   string   `toml:"fetch_timeout"`
		ImageAPI       string   `toml:"image_api"`
		FallbackImage  *string  `toml:"fallback_image"`
		PoolPath       string   `toml:"pool_path"`
		InterestDB     *string  `toml:"interest_db"`
		LogFile        *string  `toml:"log_file"`
		LogLevel       string   `toml:"log_level"`
		Seed           uint64   `toml:"seed"`
		SwipeThreshold int      `toml:"swipe_threshold"`
		SwipeVelocity  *float64 `toml:"swipe_velocity"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.BufferSize < 0 {
		return Config{}, fmt.Errorf("parse config: buffer_size must not be negative")
	}
	if raw.BufferSize > 0 {
		cfg.BufferSize = raw.BufferSize
	}

	if timeout := strings.TrimSpace(raw.FetchTimeout); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse config: fetch_timeout: %w", err)
		}
		cfg.FetchTimeout = d
	}

	if api := strings.TrimSpace(raw.ImageAPI); api != "" {
		cfg.ImageAPI = api
	}
	// An explicit empty fallback_image disables the fallback.
	if raw.FallbackImage != nil {
		cfg.FallbackImage = strings.TrimSpace(*raw.FallbackImage)
	}
	if pool := strings.TrimSpace(raw.PoolPath); pool != "" {
		cfg.PoolPath = mustExpand(pool)
	}
	// Empty interest_db keeps interest in memory; empty log_file disables logging.
	if raw.InterestDB != nil {
		cfg.InterestDB = optionalPath(*raw.InterestDB)
	}
	if raw.LogFile != nil {
		cfg.LogFile = optionalPath(*raw.LogFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		cfg.LogLevel = level
	}
	cfg.Seed = raw.Seed
	if raw.SwipeThreshold > 0 {
		cfg.SwipeThreshold = raw.SwipeThreshold
	}
	if raw.SwipeVelocity != nil && *raw.SwipeVelocity > 0 {
		cfg.SwipeVelocity = *raw.SwipeVelocity
	}

	return cfg, nil
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func optionalPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	return mustExpand(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

// ExpandPath resolves a leading ~ and makes the path absolute.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
