package compression

import (
	"io"

	"github.com/golang/snappy"
)

// SnappyDecompressor reads the Snappy framing format, as written by
// snappy.NewBufferedWriter.
type SnappyDecompressor struct{}

func NewSnappy() *SnappyDecompressor {
	return &SnappyDecompressor{}
}

func (d *SnappyDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}
