package chip8

import (
	"math/rand"
	"time"
)

// RandomSource provides uniformly distributed random bytes.
type RandomSource interface {
	RandomByte() uint8
}

var _ RandomSource = (*Random)(nil)

// Random is a RandomSource based on a seeded pseudo random generator.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a random source for the given seed. A seed of 0 uses the
// current time, any other seed produces a reproducible sequence.
func NewRandom(seed int64) *Random {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Random{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// RandomByte returns a byte in the range 0-255 inclusive.
func (r *Random) RandomByte() uint8 {
	return uint8(r.rng.Intn(256))
}
