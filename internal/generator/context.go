package generator

import (
	"log/slog"
	"math"
	"math/rand"
	"time"
)

// Context carries the per-run state every generator step shares: the random
// source and the identifier allocator. A new Context is built for each run.
type Context struct {
	Seed   int64
	rng    *rand.Rand
	ids    *Allocator
	logger *slog.Logger
}

// NewContext seeds the run. A nil seed draws one from the clock; the drawn
// value is kept on the Context so the run can be replayed.
func NewContext(seed *int64, logger *slog.Logger) *Context {
	s := time.Now().UnixNano()
	if seed != nil {
		s = *seed
	}
	if logger == nil {
		logger = slog.Default()
	}
	rng := rand.New(rand.NewSource(s))
	return &Context{
		Seed:   s,
		rng:    rng,
		ids:    NewAllocator(rng),
		logger: logger.With("component", "generator"),
	}
}

func (c *Context) between(lo, hi int) int {
	return lo + c.rng.Intn(hi-lo+1)
}

func (c *Context) uniform(lo, hi float64) float64 {
	return lo + c.rng.Float64()*(hi-lo)
}

func (c *Context) chance(p float64) bool {
	return c.rng.Float64() < p
}

type weighted[T any] struct {
	value  T
	weight int
}

// pick draws from a weighted table. Zero weights are never chosen.
func pick[T any](c *Context, table []weighted[T]) T {
	total := 0
	for _, w := range table {
		total += w.weight
	}
	roll := c.rng.Intn(total)
	for _, w := range table {
		if roll < w.weight {
			return w.value
		}
		roll -= w.weight
	}
	return table[len(table)-1].value
}

func choice[T any](c *Context, items []T) T {
	return items[c.rng.Intn(len(items))]
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
