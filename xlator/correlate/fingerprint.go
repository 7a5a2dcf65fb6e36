package correlate

import (
	"errors"
	"io"
	"time"
)

// Options controls how a file is fingerprinted.
type Options struct {
	ChunkSize          int
	Kind               string
	MaxValuesPerBucket int
	// KeepChunks retains every block and its subset hashes on the result.
	KeepChunks bool
}

func DefaultOptions() Options {
	return Options{
		ChunkSize:  DefaultChunkSize,
		Kind:       DefaultKind,
		KeepChunks: true,
	}
}

// FileFingerprint is the per-file result of subset fingerprinting. It is not
// modified after ProcessReader returns.
type FileFingerprint struct {
	Name   string
	Kind   string
	Table  *FrequencyTable
	Chunks []Chunk
}

// Blocks is the number of blocks the file was split into.
func (f *FileFingerprint) Blocks() int {
	return len(f.Table.blockLens)
}

// ProcessReader chunks r, enumerates and checksums every subset of every
// block and returns the resulting fingerprint. Read errors are returned as is
// and abandon the file.
func ProcessReader(r io.Reader, name string, opts Options) (*FileFingerprint, error) {
	if opts.Kind == "" {
		opts.Kind = DefaultKind
	}
	cdc := &FixedCDC{ChunkSize: opts.ChunkSize}
	chunker, err := cdc.NewChunker(r)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	fp := &FileFingerprint{
		Name:  name,
		Kind:  opts.Kind,
		Table: NewFrequencyTable(WithMaxValuesPerBucket(opts.MaxValuesPerBucket)),
	}
	var size int64
	for {
		block, err := chunker.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Errorf("failed to read block %d of %s: %v", fp.Blocks(), name, err)
			return nil, err
		}
		hashes := fp.Table.AddBlock(block)
		if opts.KeepChunks {
			fp.Chunks = append(fp.Chunks, Chunk{Block: block, Hashes: hashes})
		}
		size += int64(block.Len())
	}

	logger.Infof("fingerprinted %s (%s): %d bytes, %d blocks, %d subsets, %d distinct checksums in %v",
		name, fp.Kind, size, fp.Blocks(), fp.Table.TotalSlices(), fp.Table.Distinct(), time.Since(start))
	return fp, nil
}
