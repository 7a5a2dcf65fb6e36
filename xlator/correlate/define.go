package correlate

import "github.com/zhengshuai-xiao/crosscorrelate/internal"

var logger = internal.GetLogger("crosscorrelate_correlate")

const (
	// ChecksumSpace is the size of the Fletcher-16 codomain.
	ChecksumSpace = 1 << 16

	DefaultChunkSize = internal.DefaultChunkSize
	DefaultKind      = internal.DefaultKind
)

// Block is one chunk of a file: ChunkSize bytes, or fewer for the last block.
type Block struct {
	Index  int
	Offset int64
	Data   []byte
}

func (b Block) Len() int {
	return len(b.Data)
}

// Slice addresses Data[Start:End] of a Block.
type Slice struct {
	Start int
	End   int
}

func (s Slice) Len() int {
	return s.End - s.Start
}

// Of returns the bytes of b addressed by s. The result aliases b.Data.
func (s Slice) Of(b Block) []byte {
	return b.Data[s.Start:s.End]
}

// SubsetHash pairs a Slice with the checksum of the bytes it addresses.
type SubsetHash struct {
	Slice    Slice
	Checksum uint16
}

// Chunk is a Block together with the hash of every one of its subsets, in
// enumeration order.
type Chunk struct {
	Block  Block
	Hashes []SubsetHash
}

// HashFrequency is one row of a frequency listing.
type HashFrequency struct {
	Checksum uint16
	Count    uint64
	Subsets  [][]byte
}
