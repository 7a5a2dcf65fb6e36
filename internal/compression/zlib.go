package compression

import (
	"compress/zlib"
	"io"
)

// ZlibDecompressor reads zlib (RFC 1950) streams.
type ZlibDecompressor struct{}

func NewZlib() *ZlibDecompressor {
	return &ZlibDecompressor{}
}

func (d *ZlibDecompressor) NewReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}
