package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"github.com/zhengshuai-xiao/crosscorrelate/internal"
	"github.com/zhengshuai-xiao/crosscorrelate/internal/compression"
	"github.com/zhengshuai-xiao/crosscorrelate/xlator/correlate"
)

func sourceFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "chunk-size",
			Value: internal.DefaultChunkSize,
			Usage: "block size in bytes; every subset of every block is hashed",
		},
		&cli.StringFlag{
			Name:  "kind",
			Value: internal.DefaultKind,
			Usage: "kind tag recorded on the fingerprint",
		},
		&cli.StringFlag{
			Name:  "decompress",
			Value: "none",
			Usage: "decode the input before fingerprinting: none/zlib/snappy",
		},
		&cli.BoolFlag{
			Name:  "mmap",
			Usage: "memory-map the input instead of reading it",
		},
		&cli.IntFlag{
			Name:  "max-values",
			Usage: "keep at most this many distinct subsets per checksum (0 = all)",
		},
	}
}

// sourceConfig overlays explicitly set command flags on the loaded config.
func sourceConfig(c *cli.Context) (*internal.Config, error) {
	cfg := *configFrom(c)
	if c.IsSet("chunk-size") {
		cfg.ChunkSize = c.Int("chunk-size")
	}
	if c.IsSet("kind") {
		cfg.Kind = c.String("kind")
	}
	if c.IsSet("decompress") {
		cfg.Decompress = c.String("decompress")
	}
	if c.IsSet("mmap") {
		cfg.Mmap = c.Bool("mmap")
	}
	if c.IsSet("max-values") {
		cfg.MaxValuesPerBucket = c.Int("max-values")
	}
	if c.IsSet("top") {
		cfg.Top = c.Int("top")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func fingerprintFile(path string, cfg *internal.Config, keepChunks bool) (*correlate.FileFingerprint, error) {
	src, err := internal.OpenSource(path, cfg.Mmap)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	r, err := compression.WrapReader(cfg.Decompress, src)
	if err != nil {
		return nil, fmt.Errorf("decompress %q: %w", cfg.Decompress, err)
	}
	defer r.Close()

	return correlate.ProcessReader(r, internal.BaseName(path), correlate.Options{
		ChunkSize:          cfg.ChunkSize,
		Kind:               cfg.Kind,
		MaxValuesPerBucket: cfg.MaxValuesPerBucket,
		KeepChunks:         keepChunks,
	})
}
