package correlate

import (
	"sort"

	"github.com/zhengshuai-xiao/crosscorrelate/internal"
)

// FrequencyTable counts how often every Fletcher-16 value occurs across the
// subsets of a file and remembers which distinct subsequences produced it.
// Both arrays span the whole checksum codomain, indexed by checksum value.
//
// counts[v] == 0 exactly when values[v] is nil, and the sum of counts equals
// the number of subsets added. collided[v] is set once a second distinct
// subsequence reaches v, whether or not values[v] had room to keep it.
type FrequencyTable struct {
	counts    [ChecksumSpace]uint64
	values    [ChecksumSpace]*internal.ByteSet
	collided  [ChecksumSpace]bool
	total     uint64
	blockLens []int
	maxValues int
}

type TableOption func(*FrequencyTable)

// WithMaxValuesPerBucket bounds how many distinct subsequences each bucket
// retains. Counts are never capped. Zero means unbounded.
func WithMaxValuesPerBucket(n int) TableOption {
	return func(t *FrequencyTable) {
		if n > 0 {
			t.maxValues = n
		}
	}
}

func NewFrequencyTable(opts ...TableOption) *FrequencyTable {
	t := &FrequencyTable{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Add records one occurrence of subset and returns its checksum.
func (t *FrequencyTable) Add(subset []byte) uint16 {
	sum := internal.Fletcher16(subset)
	t.counts[sum]++
	t.total++
	set := t.values[sum]
	if set == nil {
		set = internal.NewByteSet(t.maxValues)
		t.values[sum] = set
	}
	if !set.Contains(subset) {
		if set.Len() > 0 {
			t.collided[sum] = true
		}
		if !set.Add(subset) {
			logger.Tracef("bucket 0x%04x full, subset of %d bytes not retained", sum, len(subset))
		}
	}
	return sum
}

// AddBlock records every subset of b and returns their hashes in enumeration
// order.
func (t *FrequencyTable) AddBlock(b Block) []SubsetHash {
	slices := Subsets(b.Len())
	hashes := make([]SubsetHash, len(slices))
	for i, s := range slices {
		hashes[i] = SubsetHash{Slice: s, Checksum: t.Add(s.Of(b))}
	}
	t.blockLens = append(t.blockLens, b.Len())
	logger.Debugf("block %d at offset %d: %d bytes, %d subsets", b.Index, b.Offset, b.Len(), len(slices))
	return hashes
}

func (t *FrequencyTable) Count(sum uint16) uint64 {
	return t.counts[sum]
}

// Values returns the distinct subsequences retained for sum in bytes.Compare
// order.
func (t *FrequencyTable) Values(sum uint16) [][]byte {
	if t.values[sum] == nil {
		return nil
	}
	return t.values[sum].Elements()
}

// TotalSlices is the number of subsets added so far.
func (t *FrequencyTable) TotalSlices() uint64 {
	return t.total
}

// BlockLengths lists the length of every block added through AddBlock.
func (t *FrequencyTable) BlockLengths() []int {
	return append([]int(nil), t.blockLens...)
}

// Distinct is the number of checksum values seen at least once.
func (t *FrequencyTable) Distinct() int {
	n := 0
	for _, c := range t.counts {
		if c > 0 {
			n++
		}
	}
	return n
}

// Collisions is the number of checksum values produced by more than one
// distinct subsequence, including subsequences a capped bucket did not keep.
func (t *FrequencyTable) Collisions() int {
	n := 0
	for _, c := range t.collided {
		if c {
			n++
		}
	}
	return n
}

// Dropped is the number of subset occurrences whose bytes were not retained
// because their bucket was at WithMaxValuesPerBucket capacity.
func (t *FrequencyTable) Dropped() uint64 {
	var n uint64
	for _, set := range t.values {
		if set != nil {
			n += set.Dropped()
		}
	}
	return n
}

// ByFrequency lists every observed checksum by descending count. Equal counts
// are ordered by ascending checksum value.
func (t *FrequencyTable) ByFrequency() []HashFrequency {
	return t.Top(0)
}

// Top is ByFrequency truncated to the first n rows. n <= 0 returns all rows.
func (t *FrequencyTable) Top(n int) []HashFrequency {
	sums := make([]int, 0, 1024)
	for v, c := range t.counts {
		if c > 0 {
			sums = append(sums, v)
		}
	}
	// sums is already in ascending checksum order, so a stable sort on count
	// alone keeps the tie-break.
	sort.SliceStable(sums, func(i, j int) bool {
		return t.counts[sums[i]] > t.counts[sums[j]]
	})
	if n > 0 && n < len(sums) {
		sums = sums[:n]
	}

	rows := make([]HashFrequency, len(sums))
	for i, v := range sums {
		rows[i] = HashFrequency{
			Checksum: uint16(v),
			Count:    t.counts[v],
			Subsets:  t.values[v].Elements(),
		}
	}
	return rows
}
