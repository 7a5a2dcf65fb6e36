package correlate

import "math"

// TotalSlices sums n(n+1)/2 over the actual length of every block, so a short
// final block is counted at its real size.
func TotalSlices(blockLens []int) uint64 {
	var total uint64
	for _, n := range blockLens {
		total += SubsetCount(n)
	}
	return total
}

// ShannonEntropy returns the entropy in bits of the checksum distribution in
// t, taking totalSlices as the number of observations. A zero total yields 0.
func ShannonEntropy(t *FrequencyTable, totalSlices uint64) float64 {
	if totalSlices == 0 {
		return 0
	}
	var entropy float64
	total := float64(totalSlices)
	for _, count := range t.counts {
		if count > 0 {
			p := float64(count) / total
			entropy += p * math.Log2(1/p)
		}
	}
	return entropy
}

// Entropy is the Shannon entropy of the file's checksum distribution.
func (f *FileFingerprint) Entropy() float64 {
	return ShannonEntropy(f.Table, TotalSlices(f.Table.BlockLengths()))
}

// EntropyPair returns the entropies of two fingerprints so their homogeneity
// can be compared.
func EntropyPair(first, second *FileFingerprint) (float64, float64) {
	return first.Entropy(), second.Entropy()
}
