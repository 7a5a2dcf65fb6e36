package correlate

// SubsetCount is the number of contiguous subsequences of an n-byte block.
func SubsetCount(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return uint64(n) * uint64(n+1) / 2
}

// Subsets enumerates every Slice of an n-byte block: lengths 1..n in order,
// and for each length every start offset in increasing order.
func Subsets(n int) []Slice {
	slices := make([]Slice, 0, SubsetCount(n))
	for size := 1; size <= n; size++ {
		for off := 0; off+size <= n; off++ {
			slices = append(slices, Slice{Start: off, End: off + size})
		}
	}
	return slices
}

// Subsets returns the bytes of every subset of b in enumeration order. The
// returned slices alias b.Data.
func (b Block) Subsets() [][]byte {
	slices := Subsets(b.Len())
	out := make([][]byte, len(slices))
	for i, s := range slices {
		out[i] = s.Of(b)
	}
	return out
}
