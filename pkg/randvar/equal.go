package randvar

import (
	"fmt"

	"github.com/zhengshuai-xiao/crosscorrelate/internal"
)

// Equal draws items uniformly without replacement.
type Equal[T comparable] struct {
	src   Source
	items []T
	index map[T]int
}

func NewEqual[T comparable](src Source) *Equal[T] {
	return &Equal[T]{
		src:   src,
		index: make(map[T]int),
	}
}

// Add puts every given item in the pool. Items already present are ignored.
func (e *Equal[T]) Add(items ...T) {
	for _, item := range items {
		if _, ok := e.index[item]; ok {
			continue
		}
		e.index[item] = len(e.items)
		e.items = append(e.items, item)
	}
}

// Remove reports whether item was in the pool.
func (e *Equal[T]) Remove(item T) bool {
	i, ok := e.index[item]
	if !ok {
		return false
	}
	copy(e.items[i:], e.items[i+1:])
	e.items = e.items[:len(e.items)-1]
	delete(e.index, item)
	for j := i; j < len(e.items); j++ {
		e.index[e.items[j]] = j
	}
	return true
}

func (e *Equal[T]) Contains(item T) bool {
	_, ok := e.index[item]
	return ok
}

func (e *Equal[T]) Len() int {
	return len(e.items)
}

// Items returns the pool in insertion order.
func (e *Equal[T]) Items() []T {
	return append([]T(nil), e.items...)
}

// Draw returns k distinct items chosen uniformly at random. The pool itself is
// left unchanged.
func (e *Equal[T]) Draw(k int) ([]T, error) {
	if k < 0 || k > len(e.items) {
		return nil, fmt.Errorf("cannot draw %d items from a pool of %d: %w", k, len(e.items), internal.ErrInvalidArgument)
	}
	pool := append([]T(nil), e.items...)
	// partial Fisher-Yates: the first k positions end up holding the sample
	for i := 0; i < k; i++ {
		j := i + e.src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	logger.Tracef("drew %d of %d items", k, len(pool))
	return pool[:k], nil
}
