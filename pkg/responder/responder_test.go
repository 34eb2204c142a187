package responder

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var greetings = []string{"Hello!", "Hi there!", "Greetings!"}

func TestPickIsDeterministicForSeed(t *testing.T) {
	a := New(NewLockedSource(7))
	b := New(NewLockedSource(7))
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Pick(greetings), b.Pick(greetings))
	}
}

func TestPickCoversEveryResponse(t *testing.T) {
	s := New(NewLockedSource(42))
	seen := map[string]int{}
	for i := 0; i < 600; i++ {
		r := s.Pick(greetings)
		require.Contains(t, greetings, r)
		seen[r]++
	}
	assert.Len(t, seen, len(greetings))
	for _, g := range greetings {
		// expected 200 each
		assert.Greater(t, seen[g], 100, g)
	}
}

func TestPickEdges(t *testing.T) {
	s := New(nil)
	assert.Empty(t, s.Pick(nil))
	assert.Equal(t, "only", s.Pick([]string{"only"}))
}

type fixed int

func (f fixed) IntN(n int) int { return int(f) % n }

func TestPickUsesSource(t *testing.T) {
	assert.Equal(t, "Greetings!", New(fixed(2)).Pick(greetings))
	assert.Equal(t, "Hello!", New(fixed(3)).Pick(greetings))
}

func TestLockedSourceConcurrent(t *testing.T) {
	s := New(NewLockedSource(1))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.Contains(t, greetings, s.Pick(greetings))
			}
		}()
	}
	wg.Wait()
}

func TestRespond(t *testing.T) {
	s := New(fixed(0))
	fallback := []string{"Sorry?"}
	assert.Equal(t, "Hello!", s.Respond(greetings, true, fallback))
	assert.Equal(t, "Sorry?", s.Respond(greetings, false, fallback))
	assert.Equal(t, "Sorry?", s.Respond(nil, false, fallback))
}
