package correlate

import "io"

// Chunker is an interface that returns the next block from a stream.
// It returns io.EOF once the stream is exhausted.
type Chunker interface {
	Next() (Block, error)
}

// CDC is an interface for creating chunkers from a reader.
type CDC interface {
	NewChunker(r io.Reader) (Chunker, error)
}
