package correlate

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhengshuai-xiao/crosscorrelate/internal"
)

func TestFixedCDC(t *testing.T) {
	testCases := []struct {
		name          string
		input         []byte
		chunkSize     int
		expectedLens  []int
		expectedError error
	}{
		{
			name:          "Empty Input",
			input:         []byte{},
			chunkSize:     10,
			expectedLens:  []int{},
			expectedError: io.EOF,
		},
		{
			name:          "Single Partial Chunk",
			input:         []byte("hello"),
			chunkSize:     10,
			expectedLens:  []int{5},
			expectedError: io.EOF,
		},
		{
			name:          "Single Full Chunk",
			input:         []byte("0123456789"),
			chunkSize:     10,
			expectedLens:  []int{10},
			expectedError: io.EOF,
		},
		{
			name:          "Multiple Full Chunks",
			input:         []byte("01234567890123456789"),
			chunkSize:     10,
			expectedLens:  []int{10, 10},
			expectedError: io.EOF,
		},
		{
			name:          "Multiple Chunks with Last Partial",
			input:         []byte("01234567890123456789abc"),
			chunkSize:     10,
			expectedLens:  []int{10, 10, 3},
			expectedError: io.EOF,
		},
		{
			name:          "Chunk Size One",
			input:         []byte("abc"),
			chunkSize:     1,
			expectedLens:  []int{1, 1, 1},
			expectedError: io.EOF,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cdc := &FixedCDC{ChunkSize: tc.chunkSize}
			chunker, err := cdc.NewChunker(bytes.NewReader(tc.input))
			assert.NoError(t, err)

			var blocks []Block
			var finalErr error
			for {
				block, err := chunker.Next()
				if err != nil {
					finalErr = err
					break
				}
				blocks = append(blocks, block)
			}

			assert.Equal(t, tc.expectedError, finalErr)
			assert.Len(t, blocks, len(tc.expectedLens))
			var offset int64
			for i, block := range blocks {
				assert.Equal(t, tc.expectedLens[i], block.Len())
				assert.Equal(t, i, block.Index)
				assert.Equal(t, offset, block.Offset)
				assert.Equal(t, tc.input[offset:offset+int64(block.Len())], block.Data)
				offset += int64(block.Len())
			}

			// exhausted chunkers stay exhausted
			_, err = chunker.Next()
			assert.Equal(t, io.EOF, err)
		})
	}
}

func TestFixedCDCSplitsABC(t *testing.T) {
	chunker, err := (&FixedCDC{ChunkSize: 2}).NewChunker(bytes.NewReader([]byte("abc")))
	require.NoError(t, err)

	first, err := chunker.Next()
	require.NoError(t, err)
	second, err := chunker.Next()
	require.NoError(t, err)

	assert.Equal(t, []byte("ab"), first.Data)
	assert.Equal(t, []byte("c"), second.Data)
}

func TestFixedCDCInvalidChunkSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		_, err := (&FixedCDC{ChunkSize: size}).NewChunker(bytes.NewReader([]byte("abc")))
		assert.ErrorIs(t, err, internal.ErrInvalidArgument)
	}
}

func TestFixedCDCReadError(t *testing.T) {
	errBoom := errors.New("boom")
	r := io.MultiReader(bytes.NewReader([]byte("abcd")), iotest.ErrReader(errBoom))

	chunker, err := (&FixedCDC{ChunkSize: 2}).NewChunker(r)
	require.NoError(t, err)

	for _, want := range []string{"ab", "cd"} {
		block, err := chunker.Next()
		require.NoError(t, err)
		assert.Equal(t, []byte(want), block.Data)
	}
	_, err = chunker.Next()
	assert.Equal(t, errBoom, err)
}

func TestFixedCDCBlocksDoNotShareMemory(t *testing.T) {
	chunker, err := (&FixedCDC{ChunkSize: 2}).NewChunker(bytes.NewReader([]byte("abcd")))
	require.NoError(t, err)

	first, _ := chunker.Next()
	second, _ := chunker.Next()
	second.Data[0] = 'z'
	assert.Equal(t, []byte("ab"), first.Data)
}
