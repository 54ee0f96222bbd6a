package lotto

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
)

// Generator draws number sets from its own PRNG. It is safe for concurrent use.
type Generator struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewGenerator returns a Generator seeded with seed. A zero seed picks a
// random one, so only a non-zero seed gives a reproducible sequence.
func NewGenerator(seed uint64) *Generator {
	s1, s2 := seed, seed^0x9e3779b97f4a7c15
	if seed == 0 {
		s1, s2 = rand.Uint64(), rand.Uint64()
	}
	return &Generator{r: rand.New(rand.NewPCG(s1, s2))}
}

// Draw returns one set of PickSize distinct numbers. Taking the head of a
// uniform permutation makes every subset equally likely.
func (g *Generator) Draw() NumberSet {
	g.mu.Lock()
	perm := g.r.Perm(MaxNumber - MinNumber + 1)
	g.mu.Unlock()

	var ns NumberSet
	for i := range ns {
		ns[i] = perm[i] + MinNumber
	}
	slices.Sort(ns[:])
	return ns
}

// Generate draws count independent sets.
func (g *Generator) Generate(count int) (Batch, error) {
	if count < MinSets || count > MaxSets {
		return nil, fmt.Errorf("%w: count %d is outside [%d, %d]", ErrInvalidArgument, count, MinSets, MaxSets)
	}
	batch := make(Batch, count)
	for i := range batch {
		batch[i] = g.Draw()
	}
	return batch, nil
}

var defaultGenerator = NewGenerator(0)

// Generate draws count sets from a process-wide generator.
func Generate(count int) (Batch, error) {
	return defaultGenerator.Generate(count)
}
