package petsource

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Picker is the provider's source of randomness. It is explicit state rather
// than a package global so runs can be reproduced by seed and tests can
// reset it.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker seeds a Picker. A zero seed derives one from the clock.
func NewPicker(seed uint64) *Picker {
	p := &Picker{}
	p.Reset(seed)
	return p
}

// Reset re-seeds the picker; the same seed replays the same sequence.
func (p *Picker) Reset(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	p.mu.Lock()
	p.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	p.mu.Unlock()
}

// IntN returns a value in [0, n). n must be positive.
func (p *Picker) IntN(n int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.IntN(n)
}
