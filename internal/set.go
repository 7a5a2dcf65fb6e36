package internal

import (
	"bytes"
	"sort"
)

// ByteSet holds distinct byte sequences. A positive limit bounds the number of
// members; Add past the limit is dropped and reported through Dropped.
type ByteSet struct {
	m       map[string]struct{}
	limit   int
	dropped uint64
}

func NewByteSet(limit int) *ByteSet {
	return &ByteSet{
		m:     make(map[string]struct{}),
		limit: limit,
	}
}

// Add stores a copy of item. It reports whether item is a member afterwards.
func (s *ByteSet) Add(item []byte) bool {
	key := string(item)
	if _, exists := s.m[key]; exists {
		return true
	}
	if s.limit > 0 && len(s.m) >= s.limit {
		s.dropped++
		return false
	}
	s.m[key] = struct{}{}
	return true
}

func (s *ByteSet) Contains(item []byte) bool {
	_, exists := s.m[string(item)]
	return exists
}

func (s *ByteSet) Len() int {
	return len(s.m)
}

// Dropped counts the Add calls refused because the set was full.
func (s *ByteSet) Dropped() uint64 {
	return s.dropped
}

// Elements returns the members in bytes.Compare order.
func (s *ByteSet) Elements() [][]byte {
	elements := make([][]byte, 0, len(s.m))
	for item := range s.m {
		elements = append(elements, []byte(item))
	}
	sort.Slice(elements, func(i, j int) bool {
		return bytes.Compare(elements[i], elements[j]) < 0
	})
	return elements
}
