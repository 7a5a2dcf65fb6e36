// Package randvar provides discrete random variables over mutable pools of
// items: uniform sampling without replacement and weighted single draws.
// Randomness always comes from an explicit Source so results are reproducible
// under a seeded or fake source. Pools are not safe for concurrent use.
package randvar

import (
	"math/rand/v2"

	"github.com/zhengshuai-xiao/crosscorrelate/internal"
)

var logger = internal.GetLogger("crosscorrelate_randvar")

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic PCG-backed Source.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
