package correlate

import (
	"fmt"
	"io"

	"github.com/zhengshuai-xiao/crosscorrelate/internal"
)

// FixedCDC implements the CDC interface to create fixed-size chunkers.
type FixedCDC struct {
	ChunkSize int
}

// NewChunker creates a new chunker that reads from r and produces fixed-size blocks.
func (f *FixedCDC) NewChunker(r io.Reader) (Chunker, error) {
	if f.ChunkSize < 1 {
		return nil, fmt.Errorf("chunk size %d is not at least one: %w", f.ChunkSize, internal.ErrInvalidArgument)
	}
	return &fixedChunker{
		r:         r,
		chunkSize: f.ChunkSize,
	}, nil
}

// fixedChunker implements the Chunker interface for fixed-size chunking.
type fixedChunker struct {
	r         io.Reader
	chunkSize int
	index     int
	offset    int64
	done      bool
}

// Next returns the next fixed-size block from the reader. The final block may
// be shorter; afterwards Next keeps returning io.EOF.
func (c *fixedChunker) Next() (Block, error) {
	if c.done {
		return Block{}, io.EOF
	}
	buf := make([]byte, c.chunkSize)
	n, err := io.ReadFull(c.r, buf)

	if err == io.EOF { // Clean end of stream, no bytes read.
		c.done = true
		return Block{}, io.EOF
	}
	if err == io.ErrUnexpectedEOF { // Last partial block.
		c.done = true
		buf = buf[:n]
	} else if err != nil { // Some other error occurred.
		return Block{}, err
	}

	b := Block{Index: c.index, Offset: c.offset, Data: buf}
	c.index++
	c.offset += int64(n)
	return b, nil
}
