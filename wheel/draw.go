// Package wheel draws a weighted random choice, the way a spun wheel lands on
// a slice proportional to its size.
package wheel

import (
	"math/rand"
	"team-lab/balancer"
	"team-lab/domain"
	"team-lab/errors"
)

// Draw returns the index of the winning choice. Zero-weight choices never win.
// A nil rng is replaced by one seeded from crypto/rand.
func Draw(choices []domain.Choice, rng *rand.Rand) (int, error) {
	total := domain.TotalWeight(choices)
	if total == 0 {
		return 0, errors.ErrEmptyWheel
	}
	if rng == nil {
		rng = balancer.NewRand(nil)
	}
	ticket := uint64(rng.Int63n(int64(total)))
	for i, c := range choices {
		if ticket < uint64(c.Weight) {
			return i, nil
		}
		ticket -= uint64(c.Weight)
	}
	// unreachable while ticket < total
	return len(choices) - 1, nil
}
