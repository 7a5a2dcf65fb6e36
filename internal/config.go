package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	DefaultChunkSize = 128
	DefaultKind      = "binary"
	DefaultTop       = 20
)

// Config carries the settings shared by every command. Values loaded from a
// TOML file are overridden by explicit command-line flags.
type Config struct {
	ChunkSize          int    `toml:"chunk_size"`
	Kind               string `toml:"kind"`
	Top                int    `toml:"top"`
	MaxValuesPerBucket int    `toml:"max_values_per_bucket"`
	Decompress         string `toml:"decompress"`
	Mmap               bool   `toml:"mmap"`
	LogLevel           string `toml:"log_level"`
	LogFile            string `toml:"log_file"`
	NoColor            bool   `toml:"no_color"`
}

func DefaultConfig() *Config {
	return &Config{
		ChunkSize:  DefaultChunkSize,
		Kind:       DefaultKind,
		Top:        DefaultTop,
		Decompress: "none",
		LogLevel:   "info",
	}
}

// LoadConfig reads path on top of DefaultConfig. A missing file is not an
// error when the path is empty.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s does not exist: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debugf("loaded config from %s: %+v", path, *cfg)
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be at least 1, got %d: %w", c.ChunkSize, ErrInvalidArgument)
	}
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d: %w", c.Top, ErrInvalidArgument)
	}
	if c.MaxValuesPerBucket < 0 {
		return fmt.Errorf("max_values_per_bucket must not be negative, got %d: %w", c.MaxValuesPerBucket, ErrInvalidArgument)
	}
	if c.Kind == "" {
		c.Kind = DefaultKind
	}
	if c.Decompress == "" {
		c.Decompress = "none"
	}
	return nil
}
