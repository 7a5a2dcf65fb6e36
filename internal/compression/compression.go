package compression

import (
	"errors"
	"io"
	"strings"
)

type CompressionType byte

const (
	Compress_none   CompressionType = iota //0
	Compress_zlib                          //1
	Compress_snappy                        //2
)

var (
	ErrInvalidCompressionType = errors.New("invalid compression type")

	CompressionMethods = map[string]CompressionType{
		"none":   Compress_none,
		"zlib":   Compress_zlib,
		"snappy": Compress_snappy,
	}
)

// Decompressor turns a compressed input stream into the plain bytes that get
// fingerprinted.
type Decompressor interface {
	// NewReader wraps r so that reads yield the decompressed stream.
	NewReader(r io.Reader) (io.ReadCloser, error)
}

// GetDecompressorViaString maps a name to its Decompressor. "none" and "" map
// to a nil Decompressor and no error.
func GetDecompressorViaString(compressionStr string) (Decompressor, error) {
	if compressionStr == "" {
		return nil, nil
	}
	compressionType, ok := CompressionMethods[strings.ToLower(compressionStr)]
	if !ok {
		return nil, ErrInvalidCompressionType
	}
	return GetDecompressorViaType(compressionType)
}

func GetDecompressorViaType(compressionType CompressionType) (Decompressor, error) {
	switch compressionType {
	case Compress_none:
		return nil, nil
	case Compress_zlib:
		return NewZlib(), nil
	case Compress_snappy:
		return NewSnappy(), nil
	default:
		return nil, ErrInvalidCompressionType
	}
}

// WrapReader returns r decoded according to compressionStr. With no
// compression the reader is returned unchanged behind a no-op closer.
func WrapReader(compressionStr string, r io.Reader) (io.ReadCloser, error) {
	d, err := GetDecompressorViaString(compressionStr)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return io.NopCloser(r), nil
	}
	return d.NewReader(r)
}
