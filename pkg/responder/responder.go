// Package responder picks one reply uniformly at random from a candidate list.
package responder

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source yields uniformly distributed integers in [0, n).
type Source interface {
	IntN(n int) int
}

// LockedSource is a PCG generator guarded by a mutex so a single instance can
// serve concurrent requests.
type LockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewLockedSource returns a deterministic source for seed. A zero seed is
// replaced by the current time.
func NewLockedSource(seed uint64) *LockedSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &LockedSource{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *LockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Selector picks responses using its Source.
type Selector struct {
	src Source
}

// New returns a Selector. A nil src uses a time seeded LockedSource.
func New(src Source) *Selector {
	if src == nil {
		src = NewLockedSource(0)
	}
	return &Selector{src: src}
}

// Pick returns one element of responses. It returns "" only when responses is
// empty, which a validated corpus never produces.
func (s *Selector) Pick(responses []string) string {
	switch len(responses) {
	case 0:
		return ""
	case 1:
		return responses[0]
	}
	return responses[s.src.IntN(len(responses))]
}

// Respond picks from responses when ok is true and from fallback otherwise.
func (s *Selector) Respond(responses []string, ok bool, fallback []string) string {
	if ok {
		return s.Pick(responses)
	}
	return s.Pick(fallback)
}
