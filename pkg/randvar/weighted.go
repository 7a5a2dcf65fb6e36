package randvar

import (
	"fmt"

	"github.com/zhengshuai-xiao/crosscorrelate/internal"
)

// Weighted is a discrete random variable whose outcomes are drawn with
// probability proportional to their integer weight. total always equals the
// sum of the weights, and every weight is at least one.
type Weighted[T comparable] struct {
	src     Source
	order   []T
	weights map[T]int
	total   int
}

func NewWeighted[T comparable](src Source) *Weighted[T] {
	return &Weighted[T]{
		src:     src,
		weights: make(map[T]int),
	}
}

// Add increases the weight of item by weight, inserting it if needed.
func (w *Weighted[T]) Add(item T, weight int) error {
	if weight < 1 {
		return fmt.Errorf("weight must be a positive integer, got %d: %w", weight, internal.ErrInvalidArgument)
	}
	if _, ok := w.weights[item]; !ok {
		w.order = append(w.order, item)
	}
	w.weights[item] += weight
	w.total += weight
	return nil
}

// Remove drops item and its whole weight. It reports whether item was present.
func (w *Weighted[T]) Remove(item T) bool {
	weight, ok := w.weights[item]
	if !ok {
		return false
	}
	delete(w.weights, item)
	w.total -= weight
	for i, it := range w.order {
		if it == item {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Weight returns the weight of item, or zero if absent.
func (w *Weighted[T]) Weight(item T) int {
	return w.weights[item]
}

func (w *Weighted[T]) Total() int {
	return w.total
}

func (w *Weighted[T]) Len() int {
	return len(w.order)
}

// ProbabilityMass is weight(item) / total.
func (w *Weighted[T]) ProbabilityMass(item T) (float64, error) {
	weight, ok := w.weights[item]
	if !ok {
		return 0, fmt.Errorf("item %v: %w", item, internal.ErrNotFound)
	}
	return float64(weight) / float64(w.total), nil
}

// Draw picks d uniformly in [0, total) and walks the pool in insertion order,
// subtracting each weight from d; the item that takes d below zero is drawn.
// This is the same walk as drawing d in [1, total] and stopping at d <= 0, so
// each item is drawn with probability weight/total.
func (w *Weighted[T]) Draw() (T, error) {
	var zero T
	if w.total == 0 {
		return zero, fmt.Errorf("cannot draw from an empty pool: %w", internal.ErrInvalidArgument)
	}
	d := w.src.IntN(w.total)
	for _, item := range w.order {
		d -= w.weights[item]
		if d < 0 {
			return item, nil
		}
	}
	logger.Errorf("draw exhausted %d items with remainder %d, total %d", len(w.order), d, w.total)
	return zero, fmt.Errorf("weights do not add up to total %d: %w", w.total, internal.ErrInternalInvariant)
}
