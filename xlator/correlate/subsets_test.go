package correlate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubsetsCountAndBounds(t *testing.T) {
	for n := 0; n <= 32; n++ {
		slices := Subsets(n)
		assert.Len(t, slices, n*(n+1)/2, "n=%d", n)
		assert.Equal(t, uint64(n*(n+1)/2), SubsetCount(n))

		seen := make(map[Slice]struct{}, len(slices))
		for _, s := range slices {
			assert.True(t, 0 <= s.Start && s.Start < s.End && s.End <= n, "n=%d slice=%v", n, s)
			seen[s] = struct{}{}
		}
		assert.Len(t, seen, len(slices), "slices must be distinct for n=%d", n)
	}
}

func TestSubsetsOrder(t *testing.T) {
	expected := []Slice{
		{0, 1}, {1, 2}, {2, 3},
		{0, 2}, {1, 3},
		{0, 3},
	}
	assert.Equal(t, expected, Subsets(3))

	// non-decreasing length, increasing start within a length
	slices := Subsets(9)
	for i := 1; i < len(slices); i++ {
		prev, cur := slices[i-1], slices[i]
		if prev.Len() == cur.Len() {
			assert.Equal(t, prev.Start+1, cur.Start)
		} else {
			assert.Equal(t, prev.Len()+1, cur.Len())
			assert.Equal(t, 0, cur.Start)
		}
	}
}

func TestBlockSubsets(t *testing.T) {
	testCases := []struct {
		name     string
		data     string
		expected []string
	}{
		{"Two Bytes", "ab", []string{"a", "b", "ab"}},
		{"One Byte", "c", []string{"c"}},
		{"Three Bytes", "abc", []string{"a", "b", "c", "ab", "bc", "abc"}},
		{"Empty", "", []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Block{Data: []byte(tc.data)}.Subsets()
			strs := make([]string, len(got))
			for i, b := range got {
				strs[i] = string(b)
			}
			assert.Equal(t, tc.expected, strs)
		})
	}
}
