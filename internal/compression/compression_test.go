package compression

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zlibBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return b.Bytes()
}

func snappyBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var b bytes.Buffer
	w := snappy.NewBufferedWriter(&b)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return b.Bytes()
}

func TestGetDecompressor(t *testing.T) {
	t.Run("GetDecompressorViaString", func(t *testing.T) {
		// Test valid types
		d, err := GetDecompressorViaString("zlib")
		assert.NoError(t, err)
		assert.IsType(t, &ZlibDecompressor{}, d)

		d, err = GetDecompressorViaString("SNAPPY")
		assert.NoError(t, err)
		assert.IsType(t, &SnappyDecompressor{}, d)

		d, err = GetDecompressorViaString("none")
		assert.NoError(t, err)
		assert.Nil(t, d)

		d, err = GetDecompressorViaString("")
		assert.NoError(t, err)
		assert.Nil(t, d)

		// Test invalid type
		d, err = GetDecompressorViaString("invalid")
		assert.Equal(t, ErrInvalidCompressionType, err)
		assert.Nil(t, d)
	})

	t.Run("GetDecompressorViaType", func(t *testing.T) {
		d, err := GetDecompressorViaType(Compress_zlib)
		assert.NoError(t, err)
		assert.IsType(t, &ZlibDecompressor{}, d)

		d, err = GetDecompressorViaType(Compress_snappy)
		assert.NoError(t, err)
		assert.IsType(t, &SnappyDecompressor{}, d)

		d, err = GetDecompressorViaType(Compress_none)
		assert.NoError(t, err)
		assert.Nil(t, d)

		d, err = GetDecompressorViaType(99) // Some invalid type
		assert.Equal(t, ErrInvalidCompressionType, err)
		assert.Nil(t, d)
	})
}

func TestWrapReader(t *testing.T) {
	plain := []byte("the same bytes through every decoder")

	testCases := []struct {
		name  string
		kind  string
		input []byte
		want  []byte
	}{
		{"None", "none", plain, plain},
		{"Zlib", "zlib", zlibBytes(t, plain), plain},
		{"Snappy", "snappy", snappyBytes(t, plain), plain},
		{"Zlib Empty", "zlib", zlibBytes(t, nil), []byte{}},
		{"Snappy Empty", "snappy", snappyBytes(t, nil), []byte{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := WrapReader(tc.kind, bytes.NewReader(tc.input))
			require.NoError(t, err)
			defer r.Close()
			got, err := io.ReadAll(r)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := WrapReader("lz4", bytes.NewReader(plain))
	assert.ErrorIs(t, err, ErrInvalidCompressionType)
}

func TestWrapReaderInvalidData(t *testing.T) {
	garbage := []byte("this is not a compressed stream")

	_, err := WrapReader("zlib", bytes.NewReader(garbage))
	assert.Error(t, err, "zlib rejects a bad header up front")

	r, err := WrapReader("snappy", bytes.NewReader(garbage))
	require.NoError(t, err)
	_, err = io.ReadAll(r)
	assert.Error(t, err, "snappy fails on the first read")
}
