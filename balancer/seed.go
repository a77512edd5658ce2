package balancer

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// newSeed draws a seed from crypto/rand, falling back to the clock.
func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// NewRand returns a generator for the seed, or a randomly seeded one when seed is nil.
func NewRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(newSeed()))
}
